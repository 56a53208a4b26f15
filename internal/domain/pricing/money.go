// Package pricing computes line-item and document totals for quotes,
// proposals and invoices.
//
// Monetary values are exact decimals. Nothing in this package rounds an
// intermediate value; rounding to cents happens only when a value is
// rendered (see Round and FormatUSD).
package pricing

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Bounds on user-entered amounts. Larger exponents make every later
// comparison and format expand a huge big.Int.
const (
	maxAmountLength   = 32
	maxAmountExponent = 20
)

// Multiply returns unitPrice * quantity.
func Multiply(unitPrice, quantity decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(quantity)
}

// Sum adds values. An empty call returns zero.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Round rounds v to cents. Only presentation code should call it.
func Round(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// FormatUSD renders v as "$1234.56".
func FormatUSD(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-$" + v.Neg().StringFixed(2)
	}
	return "$" + v.StringFixed(2)
}

// ParseAmount parses user-entered numeric text. Empty, non-numeric, NaN and
// infinite inputs are reported with ok=false, and so is text longer than 32
// bytes or with an exponent outside [-20, 20].
func ParseAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxAmountLength {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return bounded(d)
}

// AmountFromFloat converts f, rejecting NaN, infinities and values outside
// the ParseAmount exponent range.
func AmountFromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return bounded(decimal.NewFromFloat(f))
}

func bounded(d decimal.Decimal) (decimal.Decimal, bool) {
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, false
	}
	return d, true
}
