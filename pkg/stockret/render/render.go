package render

import (
	"fmt"
	"io"

	"github.com/komsit37/stockret/pkg/stockret/report"
)

// Renderer renders a report to an output writer.
type Renderer interface {
	Render(w io.Writer, rep report.Report, opts RenderOptions) error
}

type RenderOptions struct {
	Columns     []string // listing columns, canonical keys
	Color       bool
	PrettyJSON  bool
	MaxColWidth int
}

// ForFormat returns the renderer registered under name.
func ForFormat(name string) (Renderer, error) {
	switch name {
	case "", "table":
		return NewTableRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "yaml":
		return NewYAMLRenderer(), nil
	case "names":
		return NewNamesRenderer(), nil
	}
	return nil, fmt.Errorf("unknown format %q (want table, json, yaml or names)", name)
}
