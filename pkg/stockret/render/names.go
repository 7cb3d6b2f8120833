package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/komsit37/stockret/pkg/stockret/report"
)

// namesRenderer prints the top-ranked stock names on a single comma-separated
// line, for piping into other tools.
type namesRenderer struct{}

func NewNamesRenderer() Renderer {
	return namesRenderer{}
}

func (namesRenderer) Render(w io.Writer, rep report.Report, _ RenderOptions) error {
	names := make([]string, 0, len(rep.Top))
	for _, r := range rep.Top {
		names = append(names, r.Name)
	}
	_, err := fmt.Fprintln(w, strings.Join(names, ","))
	return err
}
