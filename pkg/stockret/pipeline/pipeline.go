package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"github.com/komsit37/stockret/pkg/stockret/dataset"
	"github.com/komsit37/stockret/pkg/stockret/filter"
	"github.com/komsit37/stockret/pkg/stockret/logging"
	"github.com/komsit37/stockret/pkg/stockret/render"
	"github.com/komsit37/stockret/pkg/stockret/report"
	"github.com/komsit37/stockret/pkg/stockret/sink"
	"github.com/komsit37/stockret/pkg/stockret/source"
	"github.com/komsit37/stockret/pkg/stockret/types"
)

// NoDataMessage is printed instead of a report when nothing validated.
const NoDataMessage = "No valid data to process."

type Runner struct {
	Source   source.Source
	Renderer render.Renderer
	Sink     sink.Sink // nil disables export
	Writer   io.Writer
	Logger   *log.Logger
}

type ExecuteOptions struct {
	TopN        int
	Filter      filter.Filter
	Columns     []string
	Output      string
	Color       bool
	PrettyJSON  bool
	MaxColWidth int
}

// Analyze loads, validates and assembles the report. A source failure is
// logged and treated as an empty input.
func (r *Runner) Analyze(ctx context.Context, spec any, opts ExecuteOptions) report.Report {
	logger := r.logger()
	runID := uuid.NewString()
	started := time.Now()

	rows, err := r.Source.Load(ctx, spec)
	if err != nil {
		logger.Error().Str("run_id", runID).Err(err).Msgf("cannot read %v", spec)
		rows = nil
	}

	d := dataset.Load(rows)
	for _, rj := range d.Rejected() {
		logger.Warn().
			Str("run_id", runID).
			Str("stock", rj.Name).
			Str("price_start", rj.PriceStartRaw).
			Str("price_end", rj.PriceEndRaw).
			Str("reason", rj.Reason).
			Msg("skipping row")
	}

	rep := report.Assemble(d, report.Options{TopN: opts.TopN, Filter: opts.Filter})
	logger.Info().
		Str("run_id", runID).
		Int("rows", len(rows)).
		Int("valid", d.Len()).
		Int("rejected", len(rep.Rejected)).
		Int("listed", len(rep.Listing)).
		Int("sectors", rep.Summary.Len()).
		Dur("duration", time.Since(started)).
		Msg("analysis complete")
	return rep
}

// Execute analyzes the input, renders the report and exports the listing.
// With no valid records it prints NoDataMessage and skips both steps. Export
// failures are logged as warnings and do not fail the run.
func (r *Runner) Execute(ctx context.Context, spec any, opts ExecuteOptions) error {
	rep := r.Analyze(ctx, spec, opts)
	if rep.Empty() {
		_, err := fmt.Fprintln(r.Writer, NoDataMessage)
		return err
	}

	err := r.Renderer.Render(r.Writer, rep, render.RenderOptions{
		Columns:     opts.Columns,
		Color:       opts.Color,
		PrettyJSON:  opts.PrettyJSON,
		MaxColWidth: opts.MaxColWidth,
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	r.export(rep.Listing, opts.Output)
	return nil
}

func (r *Runner) export(rows []types.ListingRow, path string) {
	if r.Sink == nil {
		return
	}
	if path == "" {
		path = sink.DefaultOutput
	}
	logger := r.logger()
	if err := r.Sink.Write(path, rows); err != nil {
		logger.Warn().Err(err).Str("output", path).Msg("export failed")
		return
	}
	logger.Info().Str("output", path).Int("records", len(rows)).Msg("results exported")
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return logging.Discard()
	}
	return r.Logger
}
