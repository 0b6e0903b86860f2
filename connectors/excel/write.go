package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"billing-perf/domain/report"
)

// WriteReport writes one sheet per table, in order, header row first.
func WriteReport(path string, tables []report.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, tb := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", tb.Name); err != nil {
				return fmt.Errorf("sheet %s: %w", tb.Name, err)
			}
		} else if _, err := f.NewSheet(tb.Name); err != nil {
			return fmt.Errorf("sheet %s: %w", tb.Name, err)
		}
		if err := writeRow(f, tb.Name, 1, tb.Columns); err != nil {
			return fmt.Errorf("sheet %s: %w", tb.Name, err)
		}
		for ri, row := range tb.Rows {
			if err := writeRow(f, tb.Name, ri+2, row); err != nil {
				return fmt.Errorf("sheet %s row %d: %w", tb.Name, ri+2, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// ReadTable reads one sheet back as a table. Used by check and by the
// round-trip tests; the report is otherwise write-only.
func ReadTable(path, sheet string) (report.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return report.Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return report.Table{}, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	t := report.Table{Name: sheet}
	if len(rows) == 0 {
		return t, nil
	}
	t.Columns = rows[0]
	for _, row := range rows[1:] {
		// GetRows trims trailing empty cells; pad back to the header width
		// so row shape stays stable.
		for len(row) < len(t.Columns) {
			row = append(row, "")
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func writeRow(f *excelize.File, sheet string, n int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	vals := make([]interface{}, len(cells))
	for i, c := range cells {
		vals[i] = c
	}
	return f.SetSheetRow(sheet, cell, &vals)
}
