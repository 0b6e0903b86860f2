package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billing-perf/domain/incident"
)

var (
	testTasks = []string{
		"COMMAND - Ticket not Goods Issued",
		"JWS/APEX - Ticket not Goods Issued",
	}
	testUnits = []string{"TO", "M3", "EA"}
)

func invRow(region, agent, plant, task, unit string, qty float64) incident.Enriched {
	var r incident.Record
	r.Set(incident.ColPlant, plant)
	r.Set(incident.ColTaskText, task)
	r.Set(incident.ColBaseUnit, unit)
	r.Set(incident.ColDeliveryQty, "0")
	r.DeliveryQty = &qty
	r.LastAgent = agent
	return incident.Enriched{Record: r, Coordinator: "C", Region: region, Category: incident.CategoryInventory}
}

func TestInventoryRollup(t *testing.T) {
	set := fullSet(
		invRow("South", "SRUGELES", "1", testTasks[0], "TO", 30),
		invRow("South", "SRUGELES", "1", testTasks[1], "TO", 10),
		invRow("North", "CAMVELEZ", "2", testTasks[0], "TO", 60),
		invRow("North", "CAMVELEZ", "2", testTasks[0], "M3", 5),
		// Wrong task text and wrong unit must both be excluded.
		invRow("South", "SRUGELES", "1", "JWS/APEX - STPO Errors", "TO", 99),
		invRow("South", "SRUGELES", "1", testTasks[0], "KG", 99),
	)
	tb := InventoryRollup(set, testTasks, testUnits)
	require.Len(t, tb.Rows, 2)
	assert.Equal(t, []string{"Region", "Plant", "Agent", "TO", "M3", "EA", "TO %", "M3 %", "EA %"}, tb.Columns)

	// Shares are against each unit's grand total, not per group.
	assert.Equal(t, []string{"South", "1", "SRUGELES", "40", "0", "0", "40%", "0%", "0%"}, tb.Rows[0])
	assert.Equal(t, []string{"North", "2", "CAMVELEZ", "60", "5", "0", "60%", "100%", "0%"}, tb.Rows[1])
}

func TestInventoryRollupEmptyWhenNothingMatches(t *testing.T) {
	set := fullSet(invRow("South", "SRUGELES", "1", "JWS/APEX - STPO Errors", "TO", 10))
	assert.True(t, InventoryRollup(set, testTasks, testUnits).Empty())
}

func TestInventoryRollupMissingColumnDegrades(t *testing.T) {
	set := fullSet(invRow("South", "SRUGELES", "1", testTasks[0], "TO", 10))
	set.Columns = []string{incident.ColTaskText}
	assert.True(t, InventoryRollup(set, testTasks, testUnits).Empty())
}
