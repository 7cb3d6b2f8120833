package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/komsit37/stockret/pkg/stockret/report"
	"github.com/komsit37/stockret/pkg/stockret/types"
)

// model is the machine-readable shape shared by the JSON and YAML renderers.
type model struct {
	Stocks     []types.ListingRow `json:"stocks" yaml:"stocks"`
	Top        []types.Record     `json:"top" yaml:"top"`
	Sectors    []types.SectorStat `json:"sectors" yaml:"sectors"`
	BestSector *string            `json:"best_sector" yaml:"best_sector"`
	Rejected   []types.Rejected   `json:"rejected" yaml:"rejected"`
}

func toModel(rep report.Report) model {
	m := model{
		Stocks:   nonNil(rep.Listing),
		Top:      nonNil(rep.Top),
		Sectors:  nonNil(rep.Summary.Stats),
		Rejected: nonNil(rep.Rejected),
	}
	if rep.HasBest {
		best := rep.Best.Sector
		m.BestSector = &best
	}
	return m
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Render(w io.Writer, rep report.Report, opts RenderOptions) error {
	enc := json.NewEncoder(w)
	if opts.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(toModel(rep))
}

type YAMLRenderer struct{}

func NewYAMLRenderer() *YAMLRenderer { return &YAMLRenderer{} }

func (r *YAMLRenderer) Render(w io.Writer, rep report.Report, _ RenderOptions) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toModel(rep)); err != nil {
		return err
	}
	return enc.Close()
}
