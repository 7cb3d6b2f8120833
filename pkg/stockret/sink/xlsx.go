package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/komsit37/stockret/pkg/stockret/types"
)

// XLSX writes the listing to the first sheet with numeric price cells.
type XLSX struct {
	Sheet string // defaults to "Returns"
}

func (x XLSX) Write(path string, rows []types.ListingRow) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()

	sheet := x.Sheet
	if sheet == "" {
		sheet = "Returns"
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	hdr := header()
	cells := make([]any, len(hdr))
	for i, h := range hdr {
		cells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &cells); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vals := []any{r.Stock, r.Sector, r.PriceStart, r.PriceEnd, r.Return}
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
