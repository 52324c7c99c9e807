// Package currency provides rounding and display helpers for conversion rates.
package currency

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places rates and amounts are displayed with.
const Precision = 4

// RoundRate rounds x to Precision decimal places, half away from zero.
func RoundRate(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(Precision).InexactFloat64()
}

// ReverseRate returns the rounded inverse of rate, or 0 when rate is 0.
func ReverseRate(rate float64) float64 {
	if rate == 0 {
		return 0
	}
	return RoundRate(1 / rate)
}

// Convert returns amount expressed in the target currency, both operands rounded first.
func Convert(rate, amount float64) float64 {
	r := decimal.NewFromFloat(RoundRate(rate))
	a := decimal.NewFromFloat(RoundRate(amount))
	return r.Mul(a).Round(Precision).InexactFloat64()
}

// FormatNumber renders x in its shortest form, always with a fractional part ("10.0", "0.9123").
func FormatNumber(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Sprint(x)
	}
	s := decimal.NewFromFloat(x).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatOutput renders the human-readable summary of a conversion.
func FormatOutput(date, from, to string, rate, amount float64) string {
	amount = RoundRate(amount)
	rate = RoundRate(rate)
	converted := Convert(rate, amount)
	inverse := RoundRate(ReverseRate(rate))

	return fmt.Sprintf("The conversion rate on %s from %s to %s was %s. "+
		"So, %s in %s corresponds to %s in %s. The inverse rate is %s.",
		date, from, to, FormatNumber(rate),
		FormatNumber(amount), from, FormatNumber(converted), to,
		FormatNumber(inverse))
}
