package report

import (
	lo "github.com/samber/lo"

	"billing-perf/domain/incident"
)

// InventoryRollup sums delivery quantities for the goods-not-issued task
// variants, restricted to the configured unit set, grouped by (region,
// plant, agent). Units pivot into one quantity column each, followed by
// that quantity's share of the unit's grand total across all rows.
func InventoryRollup(set incident.EnrichedSet, tasks, units []string) Table {
	cols := []string{"Region", "Plant", "Agent"}
	cols = append(cols, units...)
	for _, u := range units {
		cols = append(cols, u+" %")
	}
	t := Table{Name: SheetInventory, Columns: cols}

	required := []string{
		incident.RefColRegion, incident.ColPlant, incident.ColLastAgent,
		incident.ColTaskText, incident.ColDeliveryQty, incident.ColBaseUnit,
	}
	for _, col := range required {
		if !set.Has(col) {
			return t
		}
	}

	taskSet := lo.SliceToMap(tasks, func(s string) (string, struct{}) { return s, struct{}{} })
	unitSet := lo.SliceToMap(units, func(s string) (string, struct{}) { return s, struct{}{} })

	type key struct{ region, plant, agent string }
	var order []key
	sums := make(map[key]map[string]float64)
	grand := make(map[string]float64)
	for _, r := range set.Rows {
		if _, ok := taskSet[r.TaskText]; !ok {
			continue
		}
		if _, ok := unitSet[r.BaseUnit]; !ok {
			continue
		}
		if r.DeliveryQty == nil {
			continue
		}
		k := key{r.Region, r.PlantRaw, r.LastAgent}
		if _, seen := sums[k]; !seen {
			order = append(order, k)
			sums[k] = make(map[string]float64)
		}
		sums[k][r.BaseUnit] += *r.DeliveryQty
		grand[r.BaseUnit] += *r.DeliveryQty
	}

	for _, k := range order {
		row := []string{k.region, k.plant, k.agent}
		for _, u := range units {
			row = append(row, formatNumber(round2(sums[k][u])))
		}
		for _, u := range units {
			if grand[u] == 0 {
				row = append(row, "0%")
				continue
			}
			share := round2(sums[k][u] / grand[u] * 100)
			row = append(row, formatNumber(share)+"%")
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
