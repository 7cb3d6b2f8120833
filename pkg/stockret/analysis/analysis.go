// Package analysis ranks records and aggregates them by sector.
package analysis

import (
	"sort"

	"github.com/komsit37/stockret/pkg/stockret/returns"
	"github.com/komsit37/stockret/pkg/stockret/types"
)

// TopN returns the n records with the highest return, descending. Equal
// returns keep their input order. n larger than the input returns everything;
// n <= 0 returns nothing.
func TopN(records []types.Record, n int) []types.Record {
	if n <= 0 || len(records) == 0 {
		return []types.Record{}
	}
	sorted := append([]types.Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReturnPct > sorted[j].ReturnPct
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// AggregateBySector groups records by exact sector string and averages their
// returns. Sectors appear in the order they are first seen.
func AggregateBySector(records []types.Record) types.Summary {
	var order []string
	groups := make(map[string][]float64)
	for _, r := range records {
		if _, ok := groups[r.Sector]; !ok {
			order = append(order, r.Sector)
		}
		groups[r.Sector] = append(groups[r.Sector], r.ReturnPct)
	}

	stats := make([]types.SectorStat, 0, len(order))
	for _, sector := range order {
		vals := groups[sector]
		stats = append(stats, types.SectorStat{
			Sector:    sector,
			AvgReturn: returns.Mean(vals),
			Count:     len(vals),
		})
	}
	return types.NewSummary(stats)
}

// BestSector returns the sector with the highest average return. Ties go to
// the sector seen first. ok is false for an empty summary.
func BestSector(s types.Summary) (best types.SectorStat, ok bool) {
	for i, st := range s.Stats {
		if i == 0 || st.AvgReturn > best.AvgReturn {
			best = st
		}
	}
	return best, len(s.Stats) > 0
}
