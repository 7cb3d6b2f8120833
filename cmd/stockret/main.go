package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/komsit37/stockret/pkg/stockret/columns"
	"github.com/komsit37/stockret/pkg/stockret/config"
	"github.com/komsit37/stockret/pkg/stockret/enrich"
	"github.com/komsit37/stockret/pkg/stockret/filter"
	"github.com/komsit37/stockret/pkg/stockret/logging"
	"github.com/komsit37/stockret/pkg/stockret/pipeline"
	"github.com/komsit37/stockret/pkg/stockret/render"
	"github.com/komsit37/stockret/pkg/stockret/sink"
	"github.com/komsit37/stockret/pkg/stockret/source"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "stockret <input> [output]",
		Short: "Compute stock returns, rankings and sector summaries from a price table",
		Long: `stockret reads rows with Stock, Sector, PriceStart and PriceEnd columns
from a .csv, .xlsx or .yaml file (or a directory of them), reports the return of
every valid row, the top performers and a per-sector summary, lists rejected
rows with a reason, and exports the results to a .csv, .xlsx or .json file.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return errors.New("requires an input path and an optional output path")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			if len(args) == 2 {
				cfg.Output = args[1]
			}
			cmd.SilenceUsage = true
			return run(cmd.Context(), cmd, args[0], cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default ./stockret.yaml if present)")
	flags.IntP("top", "n", 5, "number of best-performing stocks to list")
	flags.StringP("format", "f", "table", "console output: table, json, yaml or names")
	flags.Bool("color", true, "colorize console output")
	flags.Int("max-col-width", 0, "wrap table cells wider than this (0 = fit terminal)")
	flags.StringP("sector", "s", "", "only report sectors matching: exact list, glob, /regex/ or substring")
	flags.StringSliceP("columns", "c", nil, "listing columns or sets (all, prices, brief)")
	flags.String("source", "file", "row source: file, or yahoo to fill missing prices from live quotes")
	flags.Duration("quote-timeout", 5*time.Second, "timeout per live quote request")
	flags.Bool("no-export", false, "skip writing the output file")
	flags.String("log-level", "info", "log level: debug, info, warn, error")

	for key, name := range map[string]string{
		"top":           "top",
		"format":        "format",
		"color":         "color",
		"max_col_width": "max-col-width",
		"sector":        "sector",
		"columns":       "columns",
		"source":        "source",
		"quote_timeout": "quote-timeout",
		"no_export":     "no-export",
		"log_level":     "log-level",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
	return rootCmd
}

func run(ctx context.Context, cmd *cobra.Command, input string, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr(), cfg.Color)

	cols, err := columns.Select(cfg.Columns)
	if err != nil {
		return err
	}
	filt, err := filter.Parse(cfg.Sector)
	if err != nil {
		return err
	}
	renderer, err := render.ForFormat(cfg.Format)
	if err != nil {
		return err
	}

	var src source.Source = source.FileSource{}
	if cfg.Source == "yahoo" {
		quotes := enrich.NewCacheService(enrich.NewYFService(cfg.QuoteTimeout), 10*time.Minute, 512)
		src = source.QuoteSource{
			Base:   src,
			Quotes: quotes,
			OnError: func(sym string, err error) {
				logger.Warn().Str("stock", sym).Err(err).Msg("quote unavailable")
			},
		}
	}

	var out sink.Sink
	if !cfg.NoExport {
		if _, err := sink.ForPath(cfg.Output); err != nil {
			return err
		}
		out = sink.Auto{}
	}

	maxWidth := cfg.MaxColWidth
	if maxWidth == 0 {
		if w := terminalWidth(os.Stdout); w > 0 {
			maxWidth = max(w/4, 10)
		}
	}

	runner := &pipeline.Runner{
		Source:   src,
		Renderer: renderer,
		Sink:     out,
		Writer:   cmd.OutOrStdout(),
		Logger:   logger,
	}
	return runner.Execute(ctx, input, pipeline.ExecuteOptions{
		TopN:        cfg.Top,
		Filter:      filt,
		Columns:     cols,
		Output:      cfg.Output,
		Color:       cfg.Color,
		PrettyJSON:  true,
		MaxColWidth: maxWidth,
	})
}
