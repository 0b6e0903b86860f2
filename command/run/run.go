// Package run executes the full pipeline: load, clean, join, filter,
// categorize, aggregate, write.
package run

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	cfgconn "billing-perf/connectors/config"
	"billing-perf/connectors/excel"
	"billing-perf/domain/config"
	"billing-perf/domain/incident"
	"billing-perf/domain/report"
)

// Run executes the run command.
func Run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	cfgPath := fs.String("config", defaultConfigPath(), "path to config.yml")
	dbFile := fs.String("db", "", "ticket export workbook (overrides config)")
	coordFile := fs.String("coordinators", "", "coordinator reference workbook (overrides config)")
	outDir := fs.String("out", "", "output directory (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := cfgconn.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *dbFile != "" {
		cfg.DBFile = *dbFile
	}
	if *coordFile != "" {
		cfg.CoordinatorsFile = *coordFile
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if cfg.DBFile == "" {
		return fmt.Errorf("run: ticket export not set (use -db or db_file in config)")
	}
	if cfg.CoordinatorsFile == "" {
		return fmt.Errorf("run: coordinator reference not set (use -coordinators or coordinators_file in config)")
	}

	// Extract.
	slog.Info(fmt.Sprintf("Loading ticket export: %s (sheet %s)", cfg.DBFile, cfg.DBSheet))
	db, err := excel.LoadIncidents(cfg.DBFile, cfg.DBSheet)
	if err != nil {
		return err
	}
	slog.Info(fmt.Sprintf("Ticket export loaded: %d records", len(db.Rows)))

	slog.Info(fmt.Sprintf("Loading coordinator reference: %s", cfg.CoordinatorsFile))
	ref, err := excel.LoadCoordinators(cfg.CoordinatorsFile)
	if err != nil {
		return err
	}
	slog.Info(fmt.Sprintf("Coordinators loaded: %d records", len(ref.Rows)))

	// Canonicalize the filter column before anything matches against it.
	if db.Has(incident.ColWorkItemText) {
		for i := range db.Rows {
			db.Rows[i].WorkItemText = incident.Normalize(db.Rows[i].WorkItemText)
		}
	}

	// Clean: drop in-flight workflow rows.
	if db.Has(incident.ColWorkItemText) {
		pf := incident.PhraseFilter{Phrase: cfg.FilterPhrase, ChunkSize: cfg.ChunkSize}
		var removed int
		db.Rows, removed = pf.Apply(db.Rows)
		slog.Info(fmt.Sprintf("Phrase filter: %d removed, %d kept", removed, len(db.Rows)))
	} else {
		slog.Warn(fmt.Sprintf("Column %q missing, phrase filter skipped", incident.ColWorkItemText))
	}

	// Join against the coordinator reference.
	set, stats := incident.JoinCoordinators(db, ref)
	slog.Info(fmt.Sprintf("Inner join: %d -> %d rows, match rate %.1f%%, %d dropped",
		stats.Before, stats.After, stats.MatchRate, stats.Dropped))
	if stats.MissingPlantCount > 0 {
		slog.Info(fmt.Sprintf("Plants without coordinator: %d, sample %v",
			stats.MissingPlantCount, stats.MissingPlants))
	}

	// Restrict to the agent allow-list.
	if set.Has(incident.ColLastAgent) {
		af := incident.AgentFilter{Allowed: cfg.Agents}
		var removed int
		var perAgent map[string]int
		set.Rows, removed, perAgent = af.Apply(set.Rows)
		slog.Info(fmt.Sprintf("Agent filter: %d removed, %d kept", removed, len(set.Rows)))
		for _, agent := range sortedKeys(perAgent) {
			slog.Info(fmt.Sprintf("  %s: %d records", agent, perAgent[agent]))
		}
	} else {
		slog.Warn(fmt.Sprintf("Column %q missing, agent filter skipped", incident.ColLastAgent))
	}

	// Categorize.
	cls := incident.NewClassifier(categoryDefs(cfg))
	perCategory := make(map[string]int)
	for i := range set.Rows {
		set.Rows[i].Category = cls.Classify(set.Rows[i].TaskText)
		perCategory[set.Rows[i].Category]++
	}
	for _, cat := range sortedKeys(perCategory) {
		slog.Info(fmt.Sprintf("Category %s: %d records", cat, perCategory[cat]))
	}

	// Assemble and write.
	tables := report.Assemble(set, report.Params{
		ReservedCategory: incident.CategoryInventory,
		Categories:       cfg.CategoryNames(),
		InventoryTasks:   cfg.Vocabulary(incident.CategoryInventory),
		InventoryUnits:   cfg.InventoryUnits,
	})
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(cfg.OutputDir,
		fmt.Sprintf("%s_%s.xlsx", cfg.OutputBasename, time.Now().Format("January")))
	if err := excel.WriteReport(path, tables); err != nil {
		return err
	}
	slog.Info(fmt.Sprintf("Report written: %s (%d sheets)", path, len(tables)))

	fmt.Fprintf(os.Stderr, "run.done rows=%d file=%s\n", len(set.Rows), path)
	return nil
}

func categoryDefs(cfg *config.Config) []incident.CategoryDef {
	defs := make([]incident.CategoryDef, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		defs = append(defs, incident.CategoryDef{Name: c.Name, Tasks: c.Tasks})
	}
	return defs
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func defaultConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yml"
}
