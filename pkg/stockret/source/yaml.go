package source

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/komsit37/stockret/pkg/stockret/types"
)

// yamlKeys maps lower-cased YAML field names onto row columns.
var yamlKeys = map[string]string{
	"stock":       types.KeyStock,
	"sym":         types.KeyStock,
	"sector":      types.KeySector,
	"pricestart":  types.KeyPriceStart,
	"price_start": types.KeyPriceStart,
	"start":       types.KeyPriceStart,
	"priceend":    types.KeyPriceEnd,
	"price_end":   types.KeyPriceEnd,
	"end":         types.KeyPriceEnd,
}

func readYAML(path string) ([]types.RawRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseYAML(data)
}

// parseYAML accepts three shapes:
//
//	- {Stock: A, Sector: Tech, PriceStart: 1, PriceEnd: 2}   # top-level list
//	rows: [...]                                              # map with rows
//	watchlist: [{name: Tech, watchlist: [{sym: A}]}]         # grouped watchlist
//
// In a watchlist, the innermost group name is the default sector.
func parseYAML(data []byte) ([]types.RawRow, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	root = norm(root)

	switch n := root.(type) {
	case nil:
		return nil, nil
	case []any:
		return rowsFromList(n, "")
	case map[string]any:
		if v, ok := n["rows"]; ok {
			list, ok := norm(v).([]any)
			if !ok && v != nil {
				return nil, fmt.Errorf("invalid yaml: 'rows' must be a list")
			}
			return rowsFromList(list, "")
		}
		if v, ok := n["watchlist"]; ok {
			var rows []types.RawRow
			walkWatchlist(v, "", &rows)
			return rows, nil
		}
	}
	return nil, fmt.Errorf("invalid yaml: expected a list of rows, 'rows' or 'watchlist'")
}

// norm converts maps with non-string keys to map[string]any.
func norm(v any) any {
	switch m := v.(type) {
	case map[any]any:
		mm := make(map[string]any, len(m))
		for k, val := range m {
			mm[fmt.Sprint(k)] = norm(val)
		}
		return mm
	case map[string]any:
		for k, val := range m {
			m[k] = norm(val)
		}
		return m
	case []any:
		out := make([]any, 0, len(m))
		for _, e := range m {
			out = append(out, norm(e))
		}
		return out
	default:
		return v
	}
}

func rowsFromList(list []any, sector string) ([]types.RawRow, error) {
	rows := make([]types.RawRow, 0, len(list))
	for i, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid yaml: row %d is not a map", i+1)
		}
		rows = append(rows, toRow(m, sector))
	}
	return rows, nil
}

func walkWatchlist(node any, sector string, rows *[]types.RawRow) {
	switch n := node.(type) {
	case []any:
		for _, e := range n {
			walkWatchlist(e, sector, rows)
		}
	case map[string]any:
		if child, ok := n["watchlist"]; ok {
			next := sector
			if name, ok := n["name"].(string); ok && strings.TrimSpace(name) != "" {
				next = name
			}
			walkWatchlist(child, next, rows)
			return
		}
		if len(n) > 0 {
			*rows = append(*rows, toRow(n, sector))
		}
	}
}

// toRow stringifies scalar values. Null values are treated as absent. When
// several keys land in the same column, an exact column name beats an alias
// and aliases are taken in sorted key order.
func toRow(m map[string]any, sector string) types.RawRow {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	row := types.RawRow{}
	exact := map[string]bool{}
	for _, k := range keys {
		v := m[k]
		if v == nil {
			continue
		}
		key, isExact := k, true
		if canon, ok := yamlKeys[strings.ToLower(k)]; ok {
			key, isExact = canon, k == canon
		}
		if _, taken := row[key]; taken && (exact[key] || !isExact) {
			continue
		}
		row[key] = fmt.Sprint(v)
		exact[key] = isExact
	}
	if _, ok := row[types.KeySector]; !ok && sector != "" {
		row[types.KeySector] = sector
	}
	return row
}
