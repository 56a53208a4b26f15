package pricing

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// RebaseMode decides how part prices copied from a source document are
// re-derived when a new markup is applied on top of them.
type RebaseMode string

const (
	// RebaseFromTotal treats the source unit price as the new base price,
	// so the new markup compounds on the source markup.
	RebaseFromTotal RebaseMode = "total"
	// RebaseFromOriginalBase strips the source markup first and applies the
	// new markup to the original base price.
	RebaseFromOriginalBase RebaseMode = "base"
)

// ParseRebaseMode accepts "total" or "base" (case-insensitive).
func ParseRebaseMode(s string) (RebaseMode, bool) {
	switch RebaseMode(strings.ToLower(strings.TrimSpace(s))) {
	case RebaseFromTotal:
		return RebaseFromTotal, true
	case RebaseFromOriginalBase:
		return RebaseFromOriginalBase, true
	}
	return "", false
}

// PartEntry is a catalog part as seen by the engine.
type PartEntry struct {
	ID        string
	Name      string
	Category  string
	Brand     string
	UnitPrice decimal.Decimal
}

// LaborEntry is a catalog labor rate as seen by the engine.
type LaborEntry struct {
	ID         string
	Name       string
	HourlyRate decimal.Decimal
}

// SourceItem is an already priced item, e.g. a row of a stored document.
type SourceItem struct {
	ID          string
	Description string
	Kind        Kind
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Source is a stored document's items together with the markup they were
// priced under.
type Source struct {
	Items         []SourceItem
	MarkupPercent decimal.Decimal
}

// Snapshot is the recomputed view of an assembler's items and totals.
type Snapshot struct {
	Items         []LineItem
	Totals        Totals
	MarkupPercent decimal.Decimal
}

// Parts returns the part items in insertion order.
func (s Snapshot) Parts() []LineItem { return s.byKind(KindPart) }

// Labor returns the labor items in insertion order.
func (s Snapshot) Labor() []LineItem { return s.byKind(KindLabor) }

func (s Snapshot) byKind(k Kind) []LineItem {
	out := make([]LineItem, 0, len(s.Items))
	for _, it := range s.Items {
		if it.Kind() == k {
			out = append(out, it)
		}
	}
	return out
}

// Find returns the item with the given id.
func (s Snapshot) Find(id string) (LineItem, bool) {
	for _, it := range s.Items {
		if it.ID() == id {
			return it, true
		}
	}
	return LineItem{}, false
}

// PayloadItem is a line item in the shape the documents table stores.
// Base prices are not part of it.
type PayloadItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	Type        string          `json:"type"`
}

// Payload is what gets handed to persistence on submit.
type Payload struct {
	Items         []PayloadItem   `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	MarkupPercent decimal.Decimal `json:"markup_percent"`
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithRebaseMode selects how LoadFromSource re-derives part prices.
func WithRebaseMode(mode RebaseMode) Option {
	return func(a *Assembler) {
		if mode != "" {
			a.rebase = mode
		}
	}
}

// WithMarkup sets the initial markup percent.
func WithMarkup(percent decimal.Decimal) Option {
	return func(a *Assembler) {
		a.markup = NewMarkup(percent)
	}
}

// Assembler is the editable item list behind a quote, proposal or invoice
// form. It is owned by a single editing session and is not safe for
// concurrent use.
//
// Every mutator returns the recomputed snapshot and whether the change was
// applied. Invalid input and unknown ids leave the state untouched.
type Assembler struct {
	items  []LineItem
	markup Markup
	rebase RebaseMode
}

func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{markup: NewMarkup(decimal.Zero), rebase: RebaseFromTotal}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Restore rebuilds an assembler from a stored document, keeping item ids.
// Part base prices are derived from the stored unit prices and the stored
// markup. Items with an invalid quantity or price are dropped.
func Restore(src Source, opts ...Option) *Assembler {
	a := NewAssembler(opts...)
	a.markup = NewMarkup(src.MarkupPercent)
	a.items = make([]LineItem, 0, len(src.Items))
	for _, s := range src.Items {
		if !validSource(s) {
			continue
		}
		it := a.copySource(s, a.markup.rebase(s.UnitPrice))
		it.unitPrice = s.UnitPrice
		if s.ID != "" {
			it.id = s.ID
		}
		a.items = append(a.items, it)
	}
	return a
}

// Snapshot recomputes totals over the current items.
func (a *Assembler) Snapshot() Snapshot {
	items := slices.Clone(a.items)
	return Snapshot{
		Items:         items,
		Totals:        Aggregate(items),
		MarkupPercent: a.markup.Percent(),
	}
}

func (a *Assembler) Markup() Markup         { return a.markup }
func (a *Assembler) RebaseMode() RebaseMode { return a.rebase }

// AddPart appends a part priced at the entry's price under the current
// markup.
func (a *Assembler) AddPart(entry PartEntry, quantity decimal.Decimal) (Snapshot, bool) {
	if entry.UnitPrice.IsNegative() || !validQuantity(KindPart, quantity) {
		return a.Snapshot(), false
	}
	a.items = append(a.items, NewPart(entry.Name, quantity, entry.UnitPrice, a.markup))
	return a.Snapshot(), true
}

// AddLabor appends a labor line at the entry's hourly rate. Markup does not
// apply to labor.
func (a *Assembler) AddLabor(entry LaborEntry, hours decimal.Decimal) (Snapshot, bool) {
	if entry.HourlyRate.IsNegative() || !validQuantity(KindLabor, hours) {
		return a.Snapshot(), false
	}
	a.items = append(a.items, NewLabor(entry.Name, hours, entry.HourlyRate))
	return a.Snapshot(), true
}

// RemoveItem drops the item with the given id. Removing an unknown id is
// not an error.
func (a *Assembler) RemoveItem(id string) (Snapshot, bool) {
	i := a.indexOf(id)
	if i < 0 {
		return a.Snapshot(), false
	}
	a.items = slices.Delete(a.items, i, i+1)
	return a.Snapshot(), true
}

func (a *Assembler) SetQuantity(id string, quantity decimal.Decimal) (Snapshot, bool) {
	i := a.indexOf(id)
	if i < 0 {
		return a.Snapshot(), false
	}
	ok := a.items[i].SetQuantity(quantity)
	return a.Snapshot(), ok
}

func (a *Assembler) SetUnitPrice(id string, price decimal.Decimal) (Snapshot, bool) {
	i := a.indexOf(id)
	if i < 0 {
		return a.Snapshot(), false
	}
	ok := a.items[i].SetUnitPrice(price, a.markup)
	return a.Snapshot(), ok
}

// SetMarkup clamps percent into [0, 100] and reprices every part from its
// base price. Calling it twice with the same value changes nothing the
// second time.
func (a *Assembler) SetMarkup(percent decimal.Decimal) (Snapshot, bool) {
	a.markup = NewMarkup(percent)
	for i := range a.items {
		a.items[i].reprice(a.markup)
	}
	return a.Snapshot(), true
}

// LoadFromSource replaces the item list with copies of src's items priced
// under markup. Labor is carried over unchanged. For parts the new base is
// chosen by the assembler's RebaseMode.
//
// With RebaseFromTotal a source part at 110 (already marked up 10%) loaded
// under a 10% markup ends at 121. That is how invoices have always been
// built from quotes; RebaseFromOriginalBase yields 110 instead.
//
// applied is false when some source items were dropped for carrying an
// invalid quantity or price.
func (a *Assembler) LoadFromSource(src Source, markup decimal.Decimal) (Snapshot, bool) {
	sourceMarkup := NewMarkup(src.MarkupPercent)
	a.markup = NewMarkup(markup)

	items := make([]LineItem, 0, len(src.Items))
	for _, s := range src.Items {
		if !validSource(s) {
			continue
		}
		base := plainBase(s.UnitPrice)
		if a.rebase == RebaseFromOriginalBase {
			base = sourceMarkup.rebase(s.UnitPrice)
		}
		items = append(items, a.copySource(s, base))
	}
	a.items = items
	return a.Snapshot(), len(items) == len(src.Items)
}

// Payload returns the persistable form of the current state.
func (a *Assembler) Payload() Payload {
	snap := a.Snapshot()
	items := make([]PayloadItem, 0, len(snap.Items))
	for _, it := range snap.Items {
		items = append(items, PayloadItem{
			ID:          it.ID(),
			Description: it.Description(),
			Quantity:    it.Quantity(),
			UnitPrice:   it.UnitPrice(),
			Total:       it.Total(),
			Type:        it.Kind().ItemType(),
		})
	}
	return Payload{
		Items:         items,
		TotalAmount:   snap.Totals.GrandTotal,
		MarkupPercent: snap.MarkupPercent,
	}
}

func (a *Assembler) copySource(s SourceItem, base basePrice) LineItem {
	if s.Kind == KindLabor {
		return NewLabor(s.Description, s.Quantity, s.UnitPrice)
	}
	return newPart(s.Description, s.Quantity, base, a.markup)
}

func (a *Assembler) indexOf(id string) int {
	return slices.IndexFunc(a.items, func(it LineItem) bool { return it.id == id })
}

func validSource(s SourceItem) bool {
	return !s.UnitPrice.IsNegative() && validQuantity(s.Kind, s.Quantity)
}
