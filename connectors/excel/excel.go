// Package excel reads the two input workbooks and writes the report
// workbook.
package excel

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"billing-perf/domain/incident"
)

// LoadIncidents reads the ticket export from the named sheet. Header cells
// are matched by exact column name; expected columns absent from the sheet
// are recorded as missing so downstream steps can degrade instead of
// aborting.
func LoadIncidents(path, sheet string) (incident.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return incident.Dataset{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return incident.Dataset{}, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return incident.Dataset{}, fmt.Errorf("sheet %s is empty", sheet)
	}

	idx, cols, missing := matchHeader(rows[0], incident.Columns)
	if len(missing) > 0 {
		slog.Warn(fmt.Sprintf("Missing columns in %s: %v", sheet, missing))
	}

	ds := incident.Dataset{Columns: cols, Rows: make([]incident.Record, 0, len(rows)-1)}
	for _, rec := range rows[1:] {
		var r incident.Record
		for col, i := range idx {
			if i < len(rec) {
				r.Set(col, rec[i])
			}
		}
		ds.Rows = append(ds.Rows, r)
	}
	return ds, nil
}

// LoadCoordinators reads the billing-coordinator reference from the first
// sheet of the workbook. The plant and coordinator columns are required;
// the descriptive columns are optional.
func LoadCoordinators(path string) (incident.RefTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return incident.RefTable{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return incident.RefTable{}, fmt.Errorf("%s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return incident.RefTable{}, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return incident.RefTable{}, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	idx, cols, _ := matchHeader(rows[0], incident.RefColumns)
	if _, ok := idx[incident.RefColPlant]; !ok {
		return incident.RefTable{}, fmt.Errorf("%s: column %q not found, got %v",
			path, incident.RefColPlant, rows[0])
	}
	if _, ok := idx[incident.RefColCoordinator]; !ok {
		return incident.RefTable{}, fmt.Errorf("%s: column %q not found, got %v",
			path, incident.RefColCoordinator, rows[0])
	}

	ref := incident.RefTable{Columns: cols, Rows: make([]incident.Coordinator, 0, len(rows)-1)}
	for _, rec := range rows[1:] {
		var c incident.Coordinator
		for col, i := range idx {
			if i < len(rec) {
				c.Set(col, rec[i])
			}
		}
		ref.Rows = append(ref.Rows, c)
	}
	return ref, nil
}

// matchHeader maps each expected column to its index in the header row.
// Returns the index map, the expected columns found (in expected order),
// and the ones missing.
func matchHeader(header, expected []string) (map[string]int, []string, []string) {
	idx := make(map[string]int, len(expected))
	var cols, missing []string
	for _, want := range expected {
		found := false
		for i, h := range header {
			if strings.TrimSpace(h) == want {
				idx[want] = i
				cols = append(cols, want)
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	return idx, cols, missing
}
