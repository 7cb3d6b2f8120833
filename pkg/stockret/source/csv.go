package source

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/komsit37/stockret/pkg/stockret/types"
)

const utf8BOM = "\ufeff"

func readCSV(path string) ([]types.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeCSV(f)
}

// decodeCSV reads a header row followed by data rows. Ragged rows and bare
// quotes are allowed; empty lines are not rows. A line that still fails to
// parse becomes an empty row so it is rejected rather than dropped.
func decodeCSV(r io.Reader) ([]types.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	var rows []types.RawRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			rows = append(rows, types.RawRow{})
			continue
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rowFromCells(header, rec))
	}
	return rows, nil
}
