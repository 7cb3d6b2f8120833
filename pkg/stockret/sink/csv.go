package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/komsit37/stockret/pkg/stockret/types"
	"github.com/komsit37/stockret/pkg/stockret/validate"
)

// CSV writes a header row and one line per record. Numbers use their
// shortest round-trip form with a trailing ".0" on whole values.
type CSV struct{}

func (c CSV) Write(path string, rows []types.ListingRow) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.Encode(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Encode writes the CSV document to w.
func (CSV) Encode(w io.Writer, rows []types.ListingRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header()); err != nil {
		return err
	}
	for i, r := range rows {
		rec := []string{
			r.Stock,
			r.Sector,
			validate.FormatFloat(r.PriceStart),
			validate.FormatFloat(r.PriceEnd),
			validate.FormatFloat(r.Return),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
