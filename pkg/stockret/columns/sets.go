package columns

import (
	"sort"
	"strings"
)

// Sets are named column groups usable wherever a column name is accepted.
var Sets = map[string][]string{
	"all":    {Stock, Sector, PriceStart, PriceEnd, Return},
	"prices": {PriceStart, PriceEnd},
	"brief":  {Stock, Return},
}

// ExpandSets returns the union of columns for the given set names, in set
// order, without duplicates.
func ExpandSets(setNames []string) ([]string, error) {
	out := make([]string, 0, len(Order))
	seen := map[string]struct{}{}
	for _, name := range setNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cols, ok := Sets[name]
		if !ok {
			return nil, &UnknownSetError{Name: name, Available: availableSets()}
		}
		for _, c := range cols {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out, nil
}

// UnknownSetError reports an unknown column set name.
type UnknownSetError struct {
	Name      string
	Available []string
}

func (e *UnknownSetError) Error() string {
	return "unknown column set: " + e.Name + "; available: " + strings.Join(e.Available, ", ")
}

func availableSets() []string {
	keys := make([]string, 0, len(Sets))
	for k := range Sets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
