package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind tells parts and labor apart. It is fixed when an item is created.
type Kind string

const (
	KindPart  Kind = "part"
	KindLabor Kind = "labor"
)

// Persisted item types, as stored in the documents table and exported.
const (
	ItemTypePart  = "item"
	ItemTypeLabor = "labor"
)

// ItemType returns the persisted form of k.
func (k Kind) ItemType() string {
	if k == KindLabor {
		return ItemTypeLabor
	}
	return ItemTypePart
}

// KindFromItemType maps a persisted type back to a Kind. Anything that is
// not "labor" is a part, matching rows stored before the type column existed.
func KindFromItemType(t string) Kind {
	if t == ItemTypeLabor {
		return KindLabor
	}
	return KindPart
}

// variant holds the kind-specific pricing data of a LineItem.
type variant interface {
	kind() Kind
}

type partPricing struct {
	base basePrice
}

func (partPricing) kind() Kind { return KindPart }

type laborPricing struct{}

func (laborPricing) kind() Kind { return KindLabor }

// LineItem is one priced entry of a document. Parts carry a base price and
// follow the document markup; labor is billed at its rate as entered.
//
// The zero value is not usable; build items with NewPart or NewLabor.
type LineItem struct {
	id          string
	description string
	quantity    decimal.Decimal
	unitPrice   decimal.Decimal
	variant     variant
}

// NewPart returns a part priced at base marked up by m.
func NewPart(description string, quantity, base decimal.Decimal, m Markup) LineItem {
	return newPart(description, quantity, plainBase(base), m)
}

func newPart(description string, quantity decimal.Decimal, base basePrice, m Markup) LineItem {
	return LineItem{
		id:          uuid.NewString(),
		description: description,
		quantity:    quantity,
		unitPrice:   m.price(base),
		variant:     partPricing{base: base},
	}
}

// NewLabor returns a labor line billed at rate per hour.
func NewLabor(description string, hours, rate decimal.Decimal) LineItem {
	return LineItem{
		id:          uuid.NewString(),
		description: description,
		quantity:    hours,
		unitPrice:   rate,
		variant:     laborPricing{},
	}
}

func (li LineItem) ID() string                 { return li.id }
func (li LineItem) Description() string        { return li.description }
func (li LineItem) Kind() Kind                 { return li.variant.kind() }
func (li LineItem) Quantity() decimal.Decimal  { return li.quantity }
func (li LineItem) UnitPrice() decimal.Decimal { return li.unitPrice }

// Total is always quantity * unit price for the item's current state.
func (li LineItem) Total() decimal.Decimal {
	return Multiply(li.unitPrice, li.quantity)
}

// BasePrice returns the pre-markup unit price. ok is false for labor.
func (li LineItem) BasePrice() (decimal.Decimal, bool) {
	p, ok := li.variant.(partPricing)
	if !ok {
		return decimal.Zero, false
	}
	return p.base.amount(), true
}

// SetQuantity updates the quantity when q is positive. Parts are counted,
// so a fractional quantity is rejected for them.
func (li *LineItem) SetQuantity(q decimal.Decimal) bool {
	if !validQuantity(li.Kind(), q) {
		return false
	}
	li.quantity = q
	return true
}

// SetUnitPrice updates the unit price when p is not negative. For parts the
// base price is recomputed under m, so later markup changes start from the
// manually entered price. Switching back to m yields p exactly; BasePrice
// reports the quotient rounded to decimal.DivisionPrecision places.
func (li *LineItem) SetUnitPrice(p decimal.Decimal, m Markup) bool {
	if p.IsNegative() {
		return false
	}
	li.unitPrice = p
	if _, ok := li.variant.(partPricing); ok {
		li.variant = partPricing{base: m.rebase(p)}
	}
	return true
}

// reprice recomputes a part's unit price from its base. Labor is untouched.
func (li *LineItem) reprice(m Markup) {
	if p, ok := li.variant.(partPricing); ok {
		li.unitPrice = m.price(p.base)
	}
}

func validQuantity(k Kind, q decimal.Decimal) bool {
	if !q.IsPositive() {
		return false
	}
	if k == KindPart && !q.Equal(q.Truncate(0)) {
		return false
	}
	return true
}
