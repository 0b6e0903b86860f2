package report

import (
	"sort"
	"strconv"

	"billing-perf/domain/incident"
)

// plantColumns is the header of the Plants sheet.
var plantColumns = []string{"Biller", "Plant", "Category", "Percentage", "Count"}

type plantGroup struct {
	biller   string
	plant    string
	category string
	count    int
}

// PlantBreakdown groups rows by (coordinator, plant, category), keeps the
// topN groups per coordinator ranked by count descending (ties keep
// original row order), and reports each group's share of the
// coordinator's total rows. Billers are sorted ascending.
func PlantBreakdown(set incident.EnrichedSet, topN int) Table {
	t := Table{Name: SheetPlants, Columns: plantColumns}
	if !set.Has(incident.RefColCoordinator) || !set.Has(incident.ColPlant) {
		return t
	}

	type key struct{ biller, plant, category string }
	var order []key
	counts := make(map[key]int)
	totals := make(map[string]int)
	for _, r := range set.Rows {
		k := key{r.Coordinator, r.PlantRaw, r.Category}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
		totals[r.Coordinator]++
	}

	groups := make([]plantGroup, 0, len(order))
	for _, k := range order {
		groups = append(groups, plantGroup{k.biller, k.plant, k.category, counts[k]})
	}
	// Billers ascending, then count descending; stable so ties keep
	// first-encountered order.
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].biller != groups[j].biller {
			return groups[i].biller < groups[j].biller
		}
		return groups[i].count > groups[j].count
	})

	perBiller := make(map[string]int)
	for _, g := range groups {
		perBiller[g.biller]++
		if perBiller[g.biller] > topN {
			continue
		}
		t.Rows = append(t.Rows, []string{
			g.biller,
			g.plant,
			g.category,
			percent(g.count, totals[g.biller]),
			strconv.Itoa(g.count),
		})
	}
	return t
}
