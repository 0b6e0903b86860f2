package report

import (
	"strconv"

	lo "github.com/samber/lo"

	"billing-perf/domain/incident"
)

// PerformanceRow scores one billing coordinator.
type PerformanceRow struct {
	Coordinator   string
	AvgDays       float64
	Tickets       int // distinct incident identifiers
	Plants        int // distinct plants touched
	Category      string
	CategoryCount int
	CategoryShare string
	Issue         string
	IssueCount    int
}

// performanceColumns is the header of the Billing Coordinators sheet.
var performanceColumns = []string{
	"Billing Coordinator",
	"Average Days Spent",
	"Tickets Processed",
	"Plants Assigned",
	"Main Category",
	"Category Count",
	"Category %",
	"Issue",
	"Occurrences",
}

// Performance computes one row per coordinator, in first-encountered
// order. The dominant category is the stable mode of the coordinator's
// categories after excluding reserved; the issue is the stable mode of the
// work-item texts within that category. Coordinators whose dominant
// category resolves to reserved, or who have no categorizable rows at all,
// are absent from the result.
//
// Returns nil when a required column is missing from the joined set; the
// sheet then degrades to a placeholder instead of aborting the run.
func Performance(set incident.EnrichedSet, reserved string) []PerformanceRow {
	required := []string{
		incident.RefColCoordinator, incident.ColPlant, incident.ColDate,
		incident.ColEndDate, incident.ColID, incident.ColWorkItemText,
	}
	for _, col := range required {
		if !set.Has(col) {
			return nil
		}
	}

	var order []string
	groups := make(map[string][]incident.Enriched)
	for _, r := range set.Rows {
		if _, seen := groups[r.Coordinator]; !seen {
			order = append(order, r.Coordinator)
		}
		groups[r.Coordinator] = append(groups[r.Coordinator], r)
	}

	rows := make([]PerformanceRow, 0, len(order))
	for _, name := range order {
		rs := groups[name]
		total := len(rs)

		var daysSum int
		for _, r := range rs {
			daysSum += incident.DaysSpent(r.StartSerial, r.EndSerial)
		}

		tickets := len(lo.Uniq(lo.Map(rs, func(r incident.Enriched, _ int) string { return r.ID })))
		plants := len(lo.Uniq(lo.FilterMap(rs, func(r incident.Enriched, _ int) (int64, bool) {
			if r.Plant == nil {
				return 0, false
			}
			return *r.Plant, true
		})))

		cats := lo.FilterMap(rs, func(r incident.Enriched, _ int) (string, bool) {
			return r.Category, r.Category != reserved
		})
		row := PerformanceRow{
			Coordinator: name,
			AvgDays:     round2(float64(daysSum) / float64(total)),
			Tickets:     tickets,
			Plants:      plants,
		}
		if len(cats) == 0 {
			// Only reserved rows: derived fields compute against the
			// empty set, and the coordinator drops out below.
			row.Category = NoCategory
			row.Issue = UnknownIssue
			row.CategoryShare = percent(0, total)
		} else {
			dominant, _ := stableMode(cats)
			inCat := lo.Filter(rs, func(r incident.Enriched, _ int) bool {
				return r.Category == dominant
			})
			issue, issueCount := stableMode(lo.Map(inCat, func(r incident.Enriched, _ int) string {
				return r.WorkItemText
			}))
			row.Category = dominant
			row.CategoryCount = len(inCat)
			row.CategoryShare = percent(len(inCat), total)
			row.Issue = issue
			row.IssueCount = issueCount
		}
		rows = append(rows, row)
	}

	// Reserved-dominant coordinators are dropped from the result set, not
	// just excluded from the mode; coordinators with nothing but reserved
	// rows go with them.
	return lo.Filter(rows, func(r PerformanceRow, _ int) bool {
		return r.Category != reserved && r.Category != NoCategory
	})
}

// PerformanceTable renders the Performance rows as the Billing
// Coordinators sheet.
func PerformanceTable(set incident.EnrichedSet, reserved string) Table {
	t := Table{Name: SheetCoordinators, Columns: performanceColumns}
	for _, r := range Performance(set, reserved) {
		t.Rows = append(t.Rows, []string{
			r.Coordinator,
			formatNumber(r.AvgDays),
			strconv.Itoa(r.Tickets),
			strconv.Itoa(r.Plants),
			r.Category,
			strconv.Itoa(r.CategoryCount),
			r.CategoryShare,
			r.Issue,
			strconv.Itoa(r.IssueCount),
		})
	}
	return t
}

// stableMode returns the most frequent value and its count. Ties resolve
// to the value encountered first in iteration order, so the selection is
// deterministic for equal inputs.
func stableMode(values []string) (string, int) {
	counts := make(map[string]int, len(values))
	max := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > max {
			max = counts[v]
		}
	}
	for _, v := range values {
		if counts[v] == max {
			return v, max
		}
	}
	return "", 0
}
