package report

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billing-perf/domain/incident"
)

var testCategories = []string{"Contract", "Pricing", "Interface", "Incomplete", "STPO", "Inventory", "Other"}

func TestIssueDistributionPivot(t *testing.T) {
	set := fullSet(
		row("ANA", "Pricing", "x", "1", nil, nil),
		row("ANA", "Pricing", "x", "1", nil, nil),
		row("ANA", "Contract", "x", "1", nil, nil),
		row("BEA", "Other", "x", "2", nil, nil),
	)
	tb := IssueDistribution(set, testCategories)
	require.Len(t, tb.Rows, 2)
	assert.Equal(t, append(append([]string{"Biller"}, testCategories...), "Total"), tb.Columns)

	ana := tb.Rows[0]
	assert.Equal(t, "ANA", ana[0])
	assert.Equal(t, "33.33%", ana[1]) // Contract
	assert.Equal(t, "66.67%", ana[2]) // Pricing
	assert.Equal(t, "0%", ana[3])     // Interface, missing combination

	bea := tb.Rows[1]
	assert.Equal(t, "BEA", bea[0])
	assert.Equal(t, "100%", bea[7]) // Other
	assert.Equal(t, "100%", bea[8]) // Total
}

func TestIssueDistributionSumsToHundred(t *testing.T) {
	set := fullSet(
		row("ANA", "Pricing", "x", "1", nil, nil),
		row("ANA", "Contract", "x", "1", nil, nil),
		row("ANA", "STPO", "x", "1", nil, nil),
		row("ANA", "Inventory", "x", "1", nil, nil),
		row("ANA", "Other", "x", "1", nil, nil),
		row("ANA", "Pricing", "x", "1", nil, nil),
		row("ANA", "Interface", "x", "1", nil, nil),
	)
	tb := IssueDistribution(set, testCategories)
	require.Len(t, tb.Rows, 1)

	var sum float64
	for _, cell := range tb.Rows[0][1 : len(tb.Rows[0])-1] {
		v, err := strconv.ParseFloat(strings.TrimSuffix(cell, "%"), 64)
		require.NoError(t, err)
		sum += v
	}
	assert.InDelta(t, 100, sum, 0.1)

	total, err := strconv.ParseFloat(strings.TrimSuffix(tb.Rows[0][len(tb.Rows[0])-1], "%"), 64)
	require.NoError(t, err)
	assert.InDelta(t, 100, total, 0.1)
}

func TestIssueDistributionMissingColumnDegrades(t *testing.T) {
	set := fullSet(row("ANA", "Pricing", "x", "1", nil, nil))
	set.Columns = []string{incident.ColTaskText}
	assert.True(t, IssueDistribution(set, testCategories).Empty())
}
