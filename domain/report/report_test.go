package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billing-perf/domain/incident"
)

func testParams() Params {
	return Params{
		ReservedCategory: incident.CategoryInventory,
		Categories:       testCategories,
		InventoryTasks:   testTasks,
		InventoryUnits:   testUnits,
	}
}

func TestSummaryRendersAllColumns(t *testing.T) {
	e := row("ANA", "Pricing", "work item", "1001", nil, nil)
	e.Record.Set(incident.ColTaskText, "COMMAND - Pricing Incomplete")
	set := fullSet(e)

	tb := Summary(set)
	require.Len(t, tb.Rows, 1)
	assert.Equal(t, append(append([]string{}, set.Columns...), incident.ColCategory), tb.Columns)
	assert.Len(t, tb.Rows[0], len(tb.Columns))
	assert.Equal(t, "Pricing", tb.Rows[0][len(tb.Rows[0])-1])
	assert.Contains(t, tb.Rows[0], "COMMAND - Pricing Incomplete")
	assert.Contains(t, tb.Rows[0], "ANA")
}

func TestSummaryDropsNullPlant(t *testing.T) {
	good := row("ANA", "Pricing", "x", "1", nil, nil)
	var bad incident.Enriched
	bad.Coordinator = "ANA"
	set := fullSet(good, bad)

	tb := Summary(set)
	assert.Len(t, tb.Rows, 1)
}

func TestTaskSubsets(t *testing.T) {
	apex := row("ANA", "STPO", "x", "1", nil, nil)
	apex.Record.Set(incident.ColTaskText, "JWS/APEX - STPO Errors")
	command := row("ANA", "Pricing", "x", "2", nil, nil)
	command.Record.Set(incident.ColTaskText, "command - pricing incomplete")
	neither := row("ANA", "Other", "x", "3", nil, nil)
	neither.Record.Set(incident.ColTaskText, "manual review")
	set := fullSet(apex, command, neither)

	a := TaskSubset(set, SheetAPEX, "APEX")
	require.Len(t, a.Rows, 1)
	assert.Contains(t, a.Rows[0], "JWS/APEX - STPO Errors")

	c := TaskSubset(set, SheetCOMMAND, "COMMAND")
	require.Len(t, c.Rows, 1)
	assert.Contains(t, c.Rows[0], "command - pricing incomplete")
}

func TestAssembleSheetOrderAndPlaceholders(t *testing.T) {
	// One plain Pricing row: APEX/COMMAND and Inventory compute to empty
	// and must still be emitted as placeholders.
	e := row("ANA", "Pricing", "x", "1", nil, nil)
	e.Record.Set(incident.ColTaskText, "No Accounting Document for Billing Doc")
	tables := Assemble(fullSet(e), testParams())

	require.Len(t, tables, 7)
	names := make([]string, len(tables))
	for i, tb := range tables {
		names[i] = tb.Name
	}
	assert.Equal(t, []string{
		SheetSummary, SheetAPEX, SheetCOMMAND, SheetCoordinators,
		SheetPlants, SheetIssues, SheetInventory,
	}, names)

	for _, tb := range tables {
		require.NotEmpty(t, tb.Rows, "sheet %s must never be empty", tb.Name)
	}
	assert.Equal(t, []string{"Message"}, tables[1].Columns)
	assert.Equal(t, []string{"Message"}, tables[6].Columns)
	assert.NotEqual(t, []string{"Message"}, tables[0].Columns)
	assert.NotEqual(t, []string{"Message"}, tables[3].Columns)
}

func TestPercentFormatting(t *testing.T) {
	assert.Equal(t, "66.67%", percent(2, 3))
	assert.Equal(t, "50%", percent(1, 2))
	assert.Equal(t, "0%", percent(0, 0))
	assert.Equal(t, "12.5%", percent(1, 8))
}
