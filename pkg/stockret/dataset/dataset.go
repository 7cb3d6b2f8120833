// Package dataset holds the validated and rejected rows of one analysis run.
package dataset

import (
	"github.com/komsit37/stockret/pkg/stockret/types"
	"github.com/komsit37/stockret/pkg/stockret/validate"
)

// Dataset is built once by Load and read-only afterwards. Every input row
// lands in exactly one of the two collections, in source order.
type Dataset struct {
	records  []types.Record
	rejected []types.Rejected
}

// Load validates each row in order.
func Load(rows []types.RawRow) *Dataset {
	d := &Dataset{
		records:  make([]types.Record, 0, len(rows)),
		rejected: make([]types.Rejected, 0),
	}
	for _, r := range rows {
		res := validate.Row(r)
		if res.Valid {
			d.records = append(d.records, res.Record)
		} else {
			d.rejected = append(d.rejected, res.Rejected)
		}
	}
	return d
}

// All returns the valid records in insertion order. The slice is a copy.
func (d *Dataset) All() []types.Record {
	return append([]types.Record(nil), d.records...)
}

// Rejected returns the rejected rows in insertion order. The slice is a copy.
func (d *Dataset) Rejected() []types.Rejected {
	return append([]types.Rejected(nil), d.rejected...)
}

// Len is the number of valid records.
func (d *Dataset) Len() int { return len(d.records) }

// Empty reports whether there is nothing to analyze.
func (d *Dataset) Empty() bool { return len(d.records) == 0 }
