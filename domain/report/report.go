// Package report derives the output tables of the performance workbook
// from the joined, categorized incident set.
package report

import (
	"math"
	"strconv"
	"strings"

	"billing-perf/domain/incident"
)

// Sheet names of the output workbook, in order.
const (
	SheetSummary      = "Summary"
	SheetAPEX         = "APEX"
	SheetCOMMAND      = "COMMAND"
	SheetCoordinators = "Billing Coordinators"
	SheetPlants       = "Plants"
	SheetIssues       = "Issues"
	SheetInventory    = "Inventory"
)

// Sentinels for coordinators with no categorizable rows.
const (
	NoCategory   = "No Category"
	UnknownIssue = "Unknown"
)

// Table is one named sheet of the report.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Empty reports whether the table carries no data rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Placeholder is the single-row stand-in emitted for a table that computed
// to empty. Sheets are never omitted.
func Placeholder(name, message string) Table {
	return Table{Name: name, Columns: []string{"Message"}, Rows: [][]string{{message}}}
}

// Params carries the injected lookup data the aggregators need.
type Params struct {
	ReservedCategory string   // excluded from dominant-category selection
	Categories       []string // pivot column order, fallback included
	InventoryTasks   []string // goods-not-issued task texts
	InventoryUnits   []string
}

// Assemble builds every sheet of the report. Tables that compute to empty
// (missing column, no surviving rows) become placeholders.
func Assemble(set incident.EnrichedSet, p Params) []Table {
	tables := []Table{
		orPlaceholder(Summary(set), "No records after join"),
		orPlaceholder(TaskSubset(set, SheetAPEX, "APEX"), "No APEX records found"),
		orPlaceholder(TaskSubset(set, SheetCOMMAND, "COMMAND"), "No COMMAND records found"),
		orPlaceholder(PerformanceTable(set, p.ReservedCategory), "Coordinator performance could not be computed"),
		orPlaceholder(PlantBreakdown(set, 3), "No plant breakdown available"),
		orPlaceholder(IssueDistribution(set, p.Categories), "No issue distribution available"),
		orPlaceholder(InventoryRollup(set, p.InventoryTasks, p.InventoryUnits), "No inventory records found"),
	}
	return tables
}

func orPlaceholder(t Table, message string) Table {
	if t.Empty() {
		return Placeholder(t.Name, message)
	}
	return t
}

// Summary renders every joined row plus the derived Category column. Rows
// without a numeric plant are dropped, matching the join contract.
func Summary(set incident.EnrichedSet) Table {
	cols := append(append([]string{}, set.Columns...), incident.ColCategory)
	t := Table{Name: SheetSummary, Columns: cols}
	for i := range set.Rows {
		r := &set.Rows[i]
		if r.Plant == nil {
			continue
		}
		t.Rows = append(t.Rows, renderRow(r, cols))
	}
	return t
}

// TaskSubset renders the rows whose task text contains needle,
// case-insensitively.
func TaskSubset(set incident.EnrichedSet, name, needle string) Table {
	cols := append(append([]string{}, set.Columns...), incident.ColCategory)
	t := Table{Name: name, Columns: cols}
	if !set.Has(incident.ColTaskText) {
		return t
	}
	needle = strings.ToLower(needle)
	for i := range set.Rows {
		r := &set.Rows[i]
		if r.Plant == nil {
			continue
		}
		if strings.Contains(strings.ToLower(r.TaskText), needle) {
			t.Rows = append(t.Rows, renderRow(r, cols))
		}
	}
	return t
}

func renderRow(r *incident.Enriched, cols []string) []string {
	row := make([]string, len(cols))
	for i, c := range cols {
		v, _ := r.Value(c)
		row[i] = v
	}
	return row
}

// round2 mirrors the report's two-decimal rounding.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// formatNumber renders without trailing zeros: 66.67, 1.5, 12.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// percent renders part/total as a two-decimal percentage string.
func percent(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return formatNumber(round2(float64(part)/float64(total)*100)) + "%"
}
