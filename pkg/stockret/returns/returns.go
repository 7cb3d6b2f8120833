// Package returns computes percentage returns and the two-decimal rounding
// shared by every derived figure.
//
// Rounding is half away from zero, applied to the shortest decimal
// representation of the float. 2.675 therefore rounds to 2.68 even though its
// binary value sits slightly below the midpoint.
package returns

import (
	"math"

	"github.com/shopspring/decimal"
)

// Percent returns ((end - start) / start) * 100 rounded to two decimals, or 0
// when start is not positive.
func Percent(start, end float64) float64 {
	if !(start > 0) {
		return 0.0
	}
	return Round2(((end - start) / start) * 100)
}

// Round2 rounds v to two decimal places. Non-finite values are returned as is.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Mean returns the rounded average of vals, or 0 for an empty slice.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0.0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return Round2(sum / float64(len(vals)))
}
