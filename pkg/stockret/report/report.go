// Package report assembles the views produced for one analysis run.
package report

import (
	"github.com/komsit37/stockret/pkg/stockret/analysis"
	"github.com/komsit37/stockret/pkg/stockret/dataset"
	"github.com/komsit37/stockret/pkg/stockret/filter"
	"github.com/komsit37/stockret/pkg/stockret/types"
)

// DefaultTopN is the ranking size when the caller does not override it.
const DefaultTopN = 5

// Report is the full result of an analysis run. It carries no behavior; the
// renderers and sinks consume it.
type Report struct {
	Listing  []types.ListingRow
	Top      []types.Record
	TopN     int
	Summary  types.Summary
	Best     types.SectorStat
	HasBest  bool
	Rejected []types.Rejected
	Total    int // valid records before filtering
}

// Options tune the assembled views.
type Options struct {
	TopN   int
	Filter filter.Filter
}

// Assemble builds the listing, ranking and sector summary from d. The sector
// filter narrows the three views; rejected rows are forwarded unchanged.
func Assemble(d *dataset.Dataset, opts Options) Report {
	n := opts.TopN
	if n <= 0 {
		n = DefaultTopN
	}
	all := d.All()
	records := filter.Records(opts.Filter, all)

	listing := make([]types.ListingRow, 0, len(records))
	for _, r := range records {
		listing = append(listing, r.Listing())
	}
	summary := analysis.AggregateBySector(records)
	best, ok := analysis.BestSector(summary)

	return Report{
		Listing:  listing,
		Top:      analysis.TopN(records, n),
		TopN:     n,
		Summary:  summary,
		Best:     best,
		HasBest:  ok,
		Rejected: d.Rejected(),
		Total:    len(all),
	}
}

// Empty reports whether the views have no records to show.
func (r Report) Empty() bool { return len(r.Listing) == 0 }
