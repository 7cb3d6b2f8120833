// Package validate turns raw rows into records or rejections.
package validate

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/komsit37/stockret/pkg/stockret/returns"
	"github.com/komsit37/stockret/pkg/stockret/types"
)

// Rejection reasons. Price checks run first and the first applicable reason wins.
const (
	ReasonAlphabets     = "Invalid alphabets in PriceStart or PriceEnd"
	ReasonNumericFormat = "Invalid numeric format in PriceStart or PriceEnd"
	ReasonNonPositive   = "Prices must be > 0"
	ReasonMissingName   = "Missing Stock name"
)

// Result is the outcome for one row: either Record or Rejected is set.
type Result struct {
	Record   types.Record
	Rejected types.Rejected
	Valid    bool
}

// Row validates a single raw row. It never fails; parse problems are
// reported as a rejection.
func Row(raw types.RawRow) Result {
	name, hasName := field(raw, types.KeyStock)
	sector, hasSector := field(raw, types.KeySector)
	startRaw, hasStart := field(raw, types.KeyPriceStart)
	endRaw, hasEnd := field(raw, types.KeyPriceEnd)

	rej := types.Rejected{
		Name:          orNA(name, hasName),
		Sector:        orNA(sector, hasSector),
		PriceStartRaw: orNA(startRaw, hasStart),
		PriceEndRaw:   orNA(endRaw, hasEnd),
	}

	start, errStart := parsePrice(startRaw)
	end, errEnd := parsePrice(endRaw)
	if errStart != nil || errEnd != nil {
		// classify from the raw text, not the parse error
		if hasLetter(startRaw) || hasLetter(endRaw) {
			rej.Reason = ReasonAlphabets
		} else {
			rej.Reason = ReasonNumericFormat
		}
		return Result{Rejected: rej}
	}

	if !(start > 0) || !(end > 0) {
		var b strings.Builder
		b.WriteString(ReasonNonPositive)
		if !(start > 0) {
			b.WriteString(" (PriceStart: " + FormatFloat(start) + ")")
		}
		if !(end > 0) {
			b.WriteString(" (PriceEnd: " + FormatFloat(end) + ")")
		}
		rej.Reason = b.String()
		return Result{Rejected: rej}
	}

	if name == "" {
		rej.Reason = ReasonMissingName
		return Result{Rejected: rej}
	}

	return Result{Valid: true, Record: NewRecord(name, rej.Sector, start, end)}
}

// NewRecord constructs a record and computes its return.
func NewRecord(name, sector string, start, end float64) types.Record {
	return types.Record{
		Name:       name,
		Sector:     sector,
		PriceStart: start,
		PriceEnd:   end,
		ReturnPct:  returns.Percent(start, end),
	}
}

// FormatFloat prints v in shortest round-trip form, keeping a trailing ".0"
// on whole values so -5 reads as -5.0.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

func field(raw types.RawRow, key string) (string, bool) {
	v, ok := raw[key]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func orNA(v string, ok bool) string {
	if !ok {
		return types.NA
	}
	return v
}

// parsePrice accepts finite decimal numbers only; "inf", "nan" and hex
// literals are treated as unparseable text.
func parsePrice(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
