package pricing

import "github.com/shopspring/decimal"

var maxMarkupPercent = decimal.NewFromInt(100)

// Markup is a percentage uplift applied to part base prices.
// The percent is always within [0, 100].
type Markup struct {
	percent decimal.Decimal
}

// NewMarkup clamps percent into [0, 100].
func NewMarkup(percent decimal.Decimal) Markup {
	switch {
	case percent.IsNegative():
		percent = decimal.Zero
	case percent.GreaterThan(maxMarkupPercent):
		percent = maxMarkupPercent
	}
	return Markup{percent: percent}
}

func (m Markup) Percent() decimal.Decimal {
	return m.percent
}

// Apply returns base marked up by m.
func (m Markup) Apply(base decimal.Decimal) decimal.Decimal {
	return ApplyMarkup(base, m.percent)
}

// Rebase returns the base price that Apply would turn into price. The
// quotient is rounded to decimal.DivisionPrecision places when it does not
// terminate; line items keep the exact ratio instead (see basePrice).
func (m Markup) Rebase(price decimal.Decimal) decimal.Decimal {
	return m.rebase(price).amount()
}

// basePrice is a pre-markup price held as the price it was entered at and
// the markup factor in force at the time. The quotient is only taken when
// the amount itself is asked for.
type basePrice struct {
	price decimal.Decimal
	per   decimal.Decimal
}

func plainBase(amount decimal.Decimal) basePrice {
	return basePrice{price: amount, per: one}
}

func (m Markup) rebase(price decimal.Decimal) basePrice {
	return basePrice{price: price, per: factor(m.percent)}
}

func (b basePrice) amount() decimal.Decimal {
	if b.per.Equal(one) {
		return b.price
	}
	return b.price.Div(b.per)
}

// price returns b marked up by m. Under the markup b was entered at the
// entered price comes back unchanged.
func (m Markup) price(b basePrice) decimal.Decimal {
	f := factor(m.percent)
	if f.Equal(b.per) {
		return b.price
	}
	return b.price.Mul(f).Div(b.per)
}

// ApplyMarkup returns basePrice * (1 + percent/100). It does not clamp.
func ApplyMarkup(basePrice, percent decimal.Decimal) decimal.Decimal {
	return basePrice.Mul(factor(percent))
}

func factor(percent decimal.Decimal) decimal.Decimal {
	return one.Add(percent.Div(hundred))
}
