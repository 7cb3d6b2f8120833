// Package sink persists the full listing to a tabular file.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/komsit37/stockret/pkg/stockret/columns"
	"github.com/komsit37/stockret/pkg/stockret/types"
)

// DefaultOutput is the file written when no output path is given.
const DefaultOutput = "stock_returns.csv"

// Sink writes listing rows to path in the fixed column order
// Stock, Sector, PriceStart, PriceEnd, Return.
type Sink interface {
	Write(path string, rows []types.ListingRow) error
}

// UnsupportedFormatError reports an output extension no sink handles.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format %q (want .csv, .xlsx or .json)", e.Path)
}

// ForPath picks a sink from the file extension. A path without an extension
// is written as CSV.
func ForPath(path string) (Sink, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", "":
		return CSV{}, nil
	case ".xlsx":
		return XLSX{}, nil
	case ".json":
		return JSON{Indent: true}, nil
	}
	return nil, &UnsupportedFormatError{Path: path}
}

// Auto dispatches to the sink matching each path.
type Auto struct{}

func (Auto) Write(path string, rows []types.ListingRow) error {
	s, err := ForPath(path)
	if err != nil {
		return err
	}
	return s.Write(path, rows)
}

func header() []string { return columns.Headers(columns.Order) }

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return nil
}
