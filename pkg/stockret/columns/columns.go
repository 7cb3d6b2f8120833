// Package columns defines the listing columns and resolves user column
// selections.
package columns

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/komsit37/stockret/pkg/stockret/types"
)

// Canonical column keys, in sink order.
const (
	Stock      = "stock"
	Sector     = "sector"
	PriceStart = "price_start"
	PriceEnd   = "price_end"
	Return     = "return"
)

// Order is the fixed column order used by sinks.
var Order = []string{Stock, Sector, PriceStart, PriceEnd, Return}

// Def describes how a column is titled, aligned and extracted.
type Def struct {
	Key    string
	Header string // sink header
	Title  string // console header
	Align  text.Align
	Value  func(types.ListingRow) any
}

var registry = map[string]Def{
	Stock: {
		Key: Stock, Header: types.KeyStock, Title: "Stock", Align: text.AlignLeft,
		Value: func(r types.ListingRow) any { return r.Stock },
	},
	Sector: {
		Key: Sector, Header: types.KeySector, Title: "Sector", Align: text.AlignLeft,
		Value: func(r types.ListingRow) any { return r.Sector },
	},
	PriceStart: {
		Key: PriceStart, Header: types.KeyPriceStart, Title: "PriceStart", Align: text.AlignRight,
		Value: func(r types.ListingRow) any { return r.PriceStart },
	},
	PriceEnd: {
		Key: PriceEnd, Header: types.KeyPriceEnd, Title: "PriceEnd", Align: text.AlignRight,
		Value: func(r types.ListingRow) any { return r.PriceEnd },
	},
	Return: {
		Key: Return, Header: types.KeyReturn, Title: "Return(%)", Align: text.AlignRight,
		Value: func(r types.ListingRow) any { return r.Return },
	},
}

// aliases accepts sink headers and a few short forms.
var aliases = map[string]string{
	"name":       Stock,
	"sym":        Stock,
	"pricestart": PriceStart,
	"start":      PriceStart,
	"priceend":   PriceEnd,
	"end":        PriceEnd,
	"return%":    Return,
	"ret":        Return,
}

// Canonical maps a user-supplied name to its column key.
func Canonical(name string) (string, bool) {
	k := strings.ToLower(strings.TrimSpace(name))
	if _, ok := registry[k]; ok {
		return k, true
	}
	if a, ok := aliases[k]; ok {
		return a, true
	}
	return "", false
}

// GetDef returns the definition for a canonical key.
func GetDef(key string) (Def, bool) {
	d, ok := registry[key]
	return d, ok
}

// Select resolves column and set names into canonical keys, keeping the first
// occurrence of each. An empty selection yields Order.
func Select(names []string) ([]string, error) {
	var parts []string
	for _, n := range names {
		for _, p := range strings.Split(n, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
	}
	if len(parts) == 0 {
		return append([]string(nil), Order...), nil
	}

	out := make([]string, 0, len(parts))
	seen := map[string]struct{}{}
	add := func(k string) {
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	for _, p := range parts {
		if k, ok := Canonical(p); ok {
			add(k)
			continue
		}
		if _, ok := Sets[p]; ok {
			expanded, err := ExpandSets([]string{p})
			if err != nil {
				return nil, err
			}
			for _, k := range expanded {
				add(k)
			}
			continue
		}
		return nil, &UnknownColumnError{Name: p}
	}
	return out, nil
}

// UnknownColumnError reports a column name that is neither a column nor a set.
type UnknownColumnError struct {
	Name string
}

func (e *UnknownColumnError) Error() string {
	return "unknown column: " + e.Name + "; available: " + strings.Join(Order, ", ") +
		"; sets: " + strings.Join(availableSets(), ", ")
}

// Headers returns the sink headers for the given keys.
func Headers(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = registry[k].Header
	}
	return out
}

// FormatFloat formats v with a fixed number of decimals.
func FormatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Cell renders a column value for the console.
func Cell(key string, r types.ListingRow) string {
	d, ok := registry[key]
	if !ok {
		return ""
	}
	switch v := d.Value(r).(type) {
	case float64:
		return FormatFloat(v, 2)
	case string:
		return v
	default:
		return ""
	}
}
