// Package check verifies the run inputs without producing a report.
package check

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	cfgconn "billing-perf/connectors/config"
	"billing-perf/connectors/excel"
	"billing-perf/domain/incident"
)

// Run executes the check command: both inputs must exist and open, and
// missing expected columns are reported. A missing input is an error;
// missing columns are not (the run degrades per table).
func Run(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	cfgPath := fs.String("config", defaultConfigPath(), "path to config.yml")
	dbFile := fs.String("db", "", "ticket export workbook (overrides config)")
	coordFile := fs.String("coordinators", "", "coordinator reference workbook (overrides config)")
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

	slog.Info(fmt.Sprintf("Ticket export: %s (sheet %s)", cfg.DBFile, cfg.DBSheet))
	slog.Info(fmt.Sprintf("Coordinator reference: %s", cfg.CoordinatorsFile))

	db, err := excel.LoadIncidents(cfg.DBFile, cfg.DBSheet)
	if err != nil {
		return fmt.Errorf("check: ticket export: %w", err)
	}
	for _, col := range incident.Columns {
		if !db.Has(col) {
			slog.Warn(fmt.Sprintf("Export column missing: %q", col))
		}
	}
	slog.Info(fmt.Sprintf("Export OK: %d records, %d/%d expected columns",
		len(db.Rows), len(db.Columns), len(incident.Columns)))

	ref, err := excel.LoadCoordinators(cfg.CoordinatorsFile)
	if err != nil {
		return fmt.Errorf("check: coordinator reference: %w", err)
	}
	slog.Info(fmt.Sprintf("Reference OK: %d records, %d/%d expected columns",
		len(ref.Rows), len(ref.Columns), len(incident.RefColumns)))

	return nil
}

func defaultConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yml"
}
