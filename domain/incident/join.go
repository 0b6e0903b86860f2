package incident

import (
	"sort"
)

// JoinStats describes the attrition of the inner join. Attrition is
// expected, never an error, but it must stay observable.
type JoinStats struct {
	Before    int
	After     int
	MatchRate float64 // percentage of incident rows that matched
	Dropped   int

	// Plants seen in the incident data with no reference row.
	MissingPlantCount int
	MissingPlants     []int64 // sample, at most 5, ascending
}

// JoinCoordinators inner-joins the ticket export against the coordinator
// reference on the numeric plant key. Rows whose plant is non-numeric on
// either side never match. Duplicate reference rows for one plant produce
// the full cross of matches. Reference columns colliding with incident
// columns are suffixed, not overwritten.
func JoinCoordinators(db Dataset, ref RefTable) (EnrichedSet, JoinStats) {
	byPlant := make(map[int64][]Coordinator)
	for _, c := range ref.Rows {
		if c.Plant == nil {
			continue
		}
		byPlant[*c.Plant] = append(byPlant[*c.Plant], c)
	}

	set := EnrichedSet{Columns: mergedColumns(db.Columns, ref.Columns)}
	missing := make(map[int64]struct{})
	for _, r := range db.Rows {
		if r.Plant == nil {
			continue
		}
		matches, ok := byPlant[*r.Plant]
		if !ok {
			missing[*r.Plant] = struct{}{}
			continue
		}
		for _, c := range matches {
			set.Rows = append(set.Rows, Enriched{
				Record:        r,
				Coordinator:   c.Name,
				Market:        c.Market,
				Region:        c.Region,
				Country:       c.Country,
				RefStronghold: c.Stronghold,
			})
		}
	}

	stats := JoinStats{
		Before:            len(db.Rows),
		After:             len(set.Rows),
		Dropped:           len(db.Rows) - len(set.Rows),
		MissingPlantCount: len(missing),
	}
	if stats.Before > 0 {
		stats.MatchRate = float64(stats.After) / float64(stats.Before) * 100
	}
	plants := make([]int64, 0, len(missing))
	for p := range missing {
		plants = append(plants, p)
	}
	sort.Slice(plants, func(i, j int) bool { return plants[i] < plants[j] })
	if len(plants) > 5 {
		plants = plants[:5]
	}
	stats.MissingPlants = plants

	return set, stats
}

// mergedColumns appends the non-key reference columns to the incident
// columns, suffixing names already taken by the left-hand side.
func mergedColumns(db, ref []string) []string {
	taken := make(map[string]struct{}, len(db))
	out := make([]string, 0, len(db)+len(ref))
	for _, c := range db {
		taken[c] = struct{}{}
		out = append(out, c)
	}
	for _, c := range ref {
		if c == RefColPlant {
			continue
		}
		if _, dup := taken[c]; dup {
			c += CoordSuffix
		}
		out = append(out, c)
	}
	return out
}
