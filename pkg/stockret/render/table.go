package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/komsit37/stockret/pkg/stockret/columns"
	"github.com/komsit37/stockret/pkg/stockret/report"
)

// BestMarker flags the best sector in the summary table.
const BestMarker = "<-- BEST SECTOR"

type TableRenderer struct{}

func NewTableRenderer() *TableRenderer { return &TableRenderer{} }

func (r *TableRenderer) Render(w io.Writer, rep report.Report, opts RenderOptions) error {
	cols := opts.Columns
	if len(cols) == 0 {
		cols = columns.Order
	}
	maxWidth := opts.MaxColWidth
	if maxWidth <= 0 {
		maxWidth = 40
	}

	// All stocks
	section(w, "All Stock Details", opts)
	tw := newWriter(w, opts)
	hdr := make(table.Row, len(cols))
	cfgs := make([]table.ColumnConfig, 0, len(cols))
	for i, c := range cols {
		def, ok := columns.GetDef(c)
		if !ok {
			return &columns.UnknownColumnError{Name: c}
		}
		hdr[i] = def.Title
		cfgs = append(cfgs, table.ColumnConfig{Number: i + 1, WidthMax: maxWidth, Align: def.Align, AlignHeader: def.Align})
	}
	tw.AppendHeader(hdr)
	tw.SetColumnConfigs(cfgs)
	for _, l := range rep.Listing {
		row := make(table.Row, len(cols))
		for i, c := range cols {
			row[i] = columns.Cell(c, l)
			if c == columns.Return {
				row[i] = colorize(row[i].(string), l.Return, opts.Color)
			}
		}
		tw.AppendRow(row)
	}
	tw.Render()

	// Ranking
	section(w, fmt.Sprintf("Top %d Best-Performing Stocks", rep.TopN), opts)
	tw = newWriter(w, opts)
	tw.AppendHeader(table.Row{"#", "Stock", "Sector", "Return(%)"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, WidthMax: maxWidth},
		{Number: 3, WidthMax: maxWidth},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	for i, rec := range rep.Top {
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			rec.Name,
			rec.Sector,
			colorize(columns.FormatFloat(rec.ReturnPct, 2), rec.ReturnPct, opts.Color),
		})
	}
	tw.Render()

	// Sectors
	section(w, "Per-Sector Summary", opts)
	tw = newWriter(w, opts)
	tw.AppendHeader(table.Row{"Sector", "Avg Return(%)", "Count", ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: maxWidth},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	for _, st := range rep.Summary.Stats {
		marker := ""
		if rep.HasBest && st.Sector == rep.Best.Sector {
			marker = BestMarker
			if opts.Color {
				marker = text.Bold.Sprint(marker)
			}
		}
		tw.AppendRow(table.Row{
			st.Sector,
			colorize(columns.FormatFloat(st.AvgReturn, 2), st.AvgReturn, opts.Color),
			strconv.Itoa(st.Count),
			marker,
		})
	}
	tw.Render()

	if len(rep.Rejected) == 0 {
		return nil
	}
	section(w, fmt.Sprintf("Rejected Rows (%d)", len(rep.Rejected)), opts)
	tw = newWriter(w, opts)
	tw.AppendHeader(table.Row{"Stock", "Sector", "PriceStart", "PriceEnd", "Reason"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: maxWidth},
		{Number: 2, WidthMax: maxWidth},
		{Number: 3, WidthMax: maxWidth},
		{Number: 4, WidthMax: maxWidth},
	})
	for _, rj := range rep.Rejected {
		reason := rj.Reason
		if opts.Color {
			reason = text.Colors{text.FgYellow}.Sprint(reason)
		}
		tw.AppendRow(table.Row{rj.Name, rj.Sector, rj.PriceStartRaw, rj.PriceEndRaw, reason})
	}
	tw.Render()
	return nil
}

func newWriter(w io.Writer, opts RenderOptions) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if opts.Color {
		tw.SetStyle(table.StyleColoredDark)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false
	return tw
}

func section(w io.Writer, title string, opts RenderOptions) {
	title = "=== " + title + " ==="
	if opts.Color {
		title = text.Bold.Sprint(title)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
}

func colorize(s string, v float64, color bool) string {
	if !color {
		return s
	}
	switch {
	case v > 0:
		return text.Colors{text.FgGreen}.Sprint(s)
	case v < 0:
		return text.Colors{text.FgRed}.Sprint(s)
	}
	return s
}
