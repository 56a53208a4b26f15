package response

import (
	"github.com/shopspring/decimal"

	"business_manager/internal/domain/pricing"
)

// amount renders a money value rounded to cents.
func amount(d decimal.Decimal) float64 {
	return pricing.Round(d).InexactFloat64()
}

// quantity is not rounded; labor hours may carry more than two decimals.
func quantity(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
