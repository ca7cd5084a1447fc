// Package format handles the numeric boundary around the calculator:
// parsing raw user text into numbers and rendering derived values for
// display. Rounding lives here and only here.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Fallback is rendered in place of values with no finite representation.
const Fallback = "-"

// ParseNumber converts raw user text to a number. Anything that does not
// parse is coerced to 0; edits never fail at this boundary.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// FixedOr renders v with exactly two decimal places, or fallback when v is
// NaN or infinite.
func FixedOr(v float64, fallback string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Fixed renders v with exactly two decimal places using the default
// fallback for non-finite values.
func Fixed(v float64) string {
	return FixedOr(v, Fallback)
}

// Percent renders v as a two-decimal percentage.
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Fallback
	}
	return Fixed(v) + "%"
}
