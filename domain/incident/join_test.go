package incident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset(plants ...string) Dataset {
	ds := Dataset{Columns: append([]string{}, Columns...)}
	for i, p := range plants {
		var r Record
		r.Set(ColPlant, p)
		r.Set(ColID, string(rune('a'+i)))
		ds.Rows = append(ds.Rows, r)
	}
	return ds
}

func testRef(plants ...string) RefTable {
	ref := RefTable{Columns: append([]string{}, RefColumns...)}
	for _, p := range plants {
		var c Coordinator
		c.Set(RefColPlant, p)
		c.Set(RefColCoordinator, "COORD "+p)
		c.Set(RefColRegion, "South")
		ref.Rows = append(ref.Rows, c)
	}
	return ref
}

func TestJoinInner(t *testing.T) {
	set, stats := JoinCoordinators(testDataset("1", "2", "3"), testRef("1", "2"))

	require.Len(t, set.Rows, 2)
	assert.Equal(t, "COORD 1", set.Rows[0].Coordinator)
	assert.Equal(t, "COORD 2", set.Rows[1].Coordinator)

	assert.Equal(t, 3, stats.Before)
	assert.Equal(t, 2, stats.After)
	assert.Equal(t, 1, stats.Dropped)
	assert.InDelta(t, 66.67, stats.MatchRate, 0.01)
	assert.Equal(t, 1, stats.MissingPlantCount)
	assert.Equal(t, []int64{3}, stats.MissingPlants)
}

func TestJoinNonNumericPlantNeverMatches(t *testing.T) {
	set, stats := JoinCoordinators(testDataset("N/A", ""), testRef("1"))
	assert.Empty(t, set.Rows)
	assert.Equal(t, 2, stats.Dropped)
	// Non-numeric plants are nulls, not missing reference entries.
	assert.Equal(t, 0, stats.MissingPlantCount)
}

func TestJoinFloatFormattedPlants(t *testing.T) {
	// Workbook numerics can render as "1001.0" on one side only.
	set, _ := JoinCoordinators(testDataset("1001.0"), testRef("1001"))
	require.Len(t, set.Rows, 1)
}

func TestJoinDuplicateReferenceRowsCross(t *testing.T) {
	set, stats := JoinCoordinators(testDataset("7"), testRef("7", "7"))
	assert.Len(t, set.Rows, 2)
	assert.Equal(t, 2, stats.After)
}

func TestJoinSuffixesCollidingColumns(t *testing.T) {
	set, _ := JoinCoordinators(testDataset("1"), testRef("1"))

	assert.Contains(t, set.Columns, ColStronghold)
	assert.Contains(t, set.Columns, RefColStronghold+CoordSuffix)
	assert.NotContains(t, set.Columns[len(Columns):], RefColPlant)
	assert.Contains(t, set.Columns, RefColCoordinator)
}

func TestJoinEmptyIncidents(t *testing.T) {
	set, stats := JoinCoordinators(testDataset(), testRef("1"))
	assert.Empty(t, set.Rows)
	assert.Equal(t, 0.0, stats.MatchRate)
}
