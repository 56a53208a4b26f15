package pricing

import "github.com/shopspring/decimal"

// Totals partitions item totals by kind.
type Totals struct {
	Parts      decimal.Decimal
	Labor      decimal.Decimal
	GrandTotal decimal.Decimal
}

// Aggregate sums item totals per kind. The result does not depend on item
// order.
func Aggregate(items []LineItem) Totals {
	parts, labor := decimal.Zero, decimal.Zero
	for _, it := range items {
		switch it.Kind() {
		case KindLabor:
			labor = labor.Add(it.Total())
		default:
			parts = parts.Add(it.Total())
		}
	}
	return Totals{
		Parts:      parts,
		Labor:      labor,
		GrandTotal: Sum(parts, labor),
	}
}
