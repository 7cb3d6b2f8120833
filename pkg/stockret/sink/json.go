package sink

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/komsit37/stockret/pkg/stockret/types"
)

// JSON writes the listing as an array of objects keyed by column header.
type JSON struct {
	Indent bool
}

func (j JSON) Write(path string, rows []types.ListingRow) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if rows == nil {
		rows = []types.ListingRow{}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	if j.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
