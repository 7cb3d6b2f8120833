package source

import (
	"context"
	"strconv"
	"strings"

	"github.com/komsit37/stockret/pkg/stockret/enrich"
	"github.com/komsit37/stockret/pkg/stockret/types"
)

// QuoteSource fills missing prices from live quotes. PriceEnd becomes the
// current price and PriceStart the previous close implied by the percent
// change. Rows whose quote cannot be fetched are passed through unchanged and
// get rejected downstream.
type QuoteSource struct {
	Base   Source
	Quotes enrich.QuoteService
	// OnError is called for each failed lookup; may be nil.
	OnError func(sym string, err error)
}

func (s QuoteSource) Load(ctx context.Context, spec any) ([]types.RawRow, error) {
	rows, err := s.Base.Load(ctx, spec)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if present(row, types.KeyPriceStart) && present(row, types.KeyPriceEnd) {
			continue
		}
		sym := strings.TrimSpace(row[types.KeyStock])
		if sym == "" {
			continue
		}
		q, err := s.Quotes.Get(ctx, sym)
		if err != nil {
			if s.OnError != nil {
				s.OnError(sym, err)
			}
			continue
		}
		start := q.Price / (1 + q.ChgPct/100)
		row[types.KeyPriceStart] = strconv.FormatFloat(start, 'f', -1, 64)
		row[types.KeyPriceEnd] = strconv.FormatFloat(q.Price, 'f', -1, 64)
	}
	return rows, nil
}

func present(row types.RawRow, key string) bool {
	v, ok := row[key]
	return ok && strings.TrimSpace(v) != ""
}
