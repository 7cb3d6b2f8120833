package types

// Column keys expected in a raw row.
const (
	KeyStock      = "Stock"
	KeySector     = "Sector"
	KeyPriceStart = "PriceStart"
	KeyPriceEnd   = "PriceEnd"
	KeyReturn     = "Return"
)

// NA is reported in place of a field that could not be extracted from a row.
const NA = "N/A"

// RawRow maps column names to untrusted string values, as produced by a source.
type RawRow map[string]string

// Record is a validated stock observation. ReturnPct is computed once at
// construction and never recomputed.
type Record struct {
	Name       string  `json:"stock" yaml:"stock"`
	Sector     string  `json:"sector" yaml:"sector"`
	PriceStart float64 `json:"price_start" yaml:"price_start"`
	PriceEnd   float64 `json:"price_end" yaml:"price_end"`
	ReturnPct  float64 `json:"return" yaml:"return"`
}

// Rejected is a raw row that failed validation, kept with the reason.
type Rejected struct {
	Name          string `json:"stock" yaml:"stock"`
	Sector        string `json:"sector" yaml:"sector"`
	PriceStartRaw string `json:"price_start_raw" yaml:"price_start_raw"`
	PriceEndRaw   string `json:"price_end_raw" yaml:"price_end_raw"`
	Reason        string `json:"reason" yaml:"reason"`
}

// ListingRow is the serialized form of a record handed to sinks.
type ListingRow struct {
	Stock      string  `json:"Stock" yaml:"Stock"`
	Sector     string  `json:"Sector" yaml:"Sector"`
	PriceStart float64 `json:"PriceStart" yaml:"PriceStart"`
	PriceEnd   float64 `json:"PriceEnd" yaml:"PriceEnd"`
	Return     float64 `json:"Return" yaml:"Return"`
}

// Listing converts the record to its sink representation.
func (r Record) Listing() ListingRow {
	return ListingRow{
		Stock:      r.Name,
		Sector:     r.Sector,
		PriceStart: r.PriceStart,
		PriceEnd:   r.PriceEnd,
		Return:     r.ReturnPct,
	}
}

// SectorStat is the aggregate for one sector.
type SectorStat struct {
	Sector    string  `json:"sector" yaml:"sector"`
	AvgReturn float64 `json:"avg_return" yaml:"avg_return"`
	Count     int     `json:"count" yaml:"count"`
}

// Summary holds one SectorStat per sector in first-seen order.
type Summary struct {
	Stats []SectorStat
	index map[string]int
}

// NewSummary builds a summary from stats already in iteration order.
func NewSummary(stats []SectorStat) Summary {
	idx := make(map[string]int, len(stats))
	for i, s := range stats {
		idx[s.Sector] = i
	}
	return Summary{Stats: stats, index: idx}
}

// Get looks up the stat for a sector.
func (s Summary) Get(sector string) (SectorStat, bool) {
	i, ok := s.index[sector]
	if !ok {
		return SectorStat{}, false
	}
	return s.Stats[i], true
}

// Len returns the number of sectors.
func (s Summary) Len() int { return len(s.Stats) }

// Quote is a live price snapshot for a symbol.
type Quote struct {
	Name   string
	Price  float64
	ChgPct float64 // percent change since previous close, e.g. 1.5 for 1.5%
}
