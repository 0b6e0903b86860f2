package report

import (
	"sort"

	"billing-perf/domain/incident"
)

// IssueDistribution pivots category shares per coordinator: one row per
// biller, one percentage column per fixed category ("0%" where the biller
// has no rows in it), plus a Total column summing the rounded shares.
func IssueDistribution(set incident.EnrichedSet, categories []string) Table {
	cols := append(append([]string{"Biller"}, categories...), "Total")
	t := Table{Name: SheetIssues, Columns: cols}
	if !set.Has(incident.RefColCoordinator) {
		return t
	}

	type key struct{ biller, category string }
	counts := make(map[key]int)
	totals := make(map[string]int)
	for _, r := range set.Rows {
		counts[key{r.Coordinator, r.Category}]++
		totals[r.Coordinator]++
	}

	billers := make([]string, 0, len(totals))
	for b := range totals {
		billers = append(billers, b)
	}
	sort.Strings(billers)

	for _, b := range billers {
		row := make([]string, 0, len(cols))
		row = append(row, b)
		var sum float64
		for _, cat := range categories {
			n := counts[key{b, cat}]
			share := round2(float64(n) / float64(totals[b]) * 100)
			sum += share
			row = append(row, formatNumber(share)+"%")
		}
		row = append(row, formatNumber(round2(sum))+"%")
		t.Rows = append(t.Rows, row)
	}
	return t
}
