package source

import (
	"errors"

	"github.com/xuri/excelize/v2"

	"github.com/komsit37/stockret/pkg/stockret/types"
)

// readXLSX reads the first sheet; its first row is the header.
func readXLSX(path string) ([]types.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, nil
	}

	header := cells[0]
	rows := make([]types.RawRow, 0, len(cells)-1)
	for _, c := range cells[1:] {
		if blank(c) {
			continue
		}
		rows = append(rows, rowFromCells(header, c))
	}
	return rows, nil
}
