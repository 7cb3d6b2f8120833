// Package filter selects records by sector label.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/komsit37/stockret/pkg/stockret/types"
)

// Filter matches a sector label.
type Filter interface {
	Match(sector string) bool
}

// Parse builds a filter from an expression:
//   - ""                  everything
//   - "Tech,Energy"       exact labels
//   - "Tech*"             glob
//   - "/^(Tech|Bank)/"    regular expression
//   - anything else       case-insensitive substring
func Parse(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)
	switch {
	case expr == "":
		return Always(true), nil
	case len(expr) > 2 && strings.HasPrefix(expr, "/") && strings.HasSuffix(expr, "/"):
		re, err := regexp.Compile(expr[1 : len(expr)-1])
		if err != nil {
			return nil, fmt.Errorf("sector filter %q: %w", expr, err)
		}
		return Regex{re: re}, nil
	case strings.Contains(expr, ","):
		set := map[string]struct{}{}
		for _, p := range strings.Split(expr, ",") {
			if p = strings.TrimSpace(p); p != "" {
				set[p] = struct{}{}
			}
		}
		return ExactSet{set: set}, nil
	case strings.ContainsAny(expr, "*?["):
		re, err := globRegexp(expr)
		if err != nil {
			return nil, fmt.Errorf("sector filter %q: %w", expr, err)
		}
		return Glob{pattern: expr, re: re}, nil
	}
	return SubstrCI{needle: expr}, nil
}

// Records keeps the records whose sector matches, preserving order.
func Records(f Filter, records []types.Record) []types.Record {
	if f == nil {
		return records
	}
	if a, ok := f.(Always); ok && bool(a) {
		return records
	}
	out := make([]types.Record, 0, len(records))
	for _, r := range records {
		if f.Match(r.Sector) {
			out = append(out, r)
		}
	}
	return out
}

type Always bool

func (a Always) Match(string) bool { return bool(a) }
func (a Always) String() string    { return fmt.Sprintf("always:%t", bool(a)) }

type ExactSet struct{ set map[string]struct{} }

func (e ExactSet) Match(sector string) bool {
	_, ok := e.set[sector]
	return ok
}

// Glob supports *, ? and [classes]. Sectors are labels, not paths, so '/'
// is an ordinary character.
type Glob struct {
	pattern string
	re      *regexp.Regexp
}

func (g Glob) Match(sector string) bool { return g.re.MatchString(sector) }

// globRegexp translates a glob into an anchored regular expression.
func globRegexp(glob string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	runes := []rune(glob)
	for i := 0; i < len(runes); i++ {
		switch c := runes[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '\\':
			if i+1 < len(runes) {
				i++
			}
			b.WriteString(regexp.QuoteMeta(string(runes[i])))
		case '[':
			end := i + 1
			if end < len(runes) && (runes[end] == '!' || runes[end] == '^') {
				end++
			}
			if end < len(runes) && runes[end] == ']' {
				end++
			}
			for end < len(runes) && runes[end] != ']' {
				end++
			}
			if end >= len(runes) {
				return nil, fmt.Errorf("unterminated character class")
			}
			class := runes[i+1 : end]
			b.WriteString("[")
			if len(class) > 0 && class[0] == '!' {
				b.WriteString("^")
				class = class[1:]
			}
			for _, r := range class {
				if r == '\\' || r == '[' {
					b.WriteRune('\\')
				}
				b.WriteRune(r)
			}
			b.WriteString("]")
			i = end
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

func (g Glob) String() string { return "glob:" + g.pattern }

type Regex struct{ re *regexp.Regexp }

func (r Regex) Match(sector string) bool { return r.re.MatchString(sector) }

func (r Regex) String() string { return "regex:" + r.re.String() }

// SubstrCI matches when the sector contains needle, ignoring case.
type SubstrCI struct{ needle string }

func (s SubstrCI) Match(sector string) bool {
	return strings.Contains(strings.ToLower(sector), strings.ToLower(s.needle))
}

func (s SubstrCI) String() string { return "substr-ci:" + s.needle }
