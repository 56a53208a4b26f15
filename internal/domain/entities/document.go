package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"business_manager/internal/domain/pricing"
)

// DocumentKind tells quotes, invoices and proposals apart. All three share
// the same item pricing; they differ in numbering, dates and statuses.
type DocumentKind string

const (
	DocumentKindQuote    DocumentKind = "quote"
	DocumentKindInvoice  DocumentKind = "invoice"
	DocumentKindProposal DocumentKind = "proposal"
)

func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentKindQuote, DocumentKindInvoice, DocumentKindProposal:
		return true
	}
	return false
}

// NumberPrefix is the leading letter of the document number (Q-2026-0042).
func (k DocumentKind) NumberPrefix() string {
	switch k {
	case DocumentKindInvoice:
		return "I"
	case DocumentKindProposal:
		return "P"
	default:
		return "Q"
	}
}

type DocumentStatus string

const (
	DocumentStatusPending   DocumentStatus = "pending"
	DocumentStatusAccepted  DocumentStatus = "accepted"
	DocumentStatusRejected  DocumentStatus = "rejected"
	DocumentStatusExpired   DocumentStatus = "expired"
	DocumentStatusPaid      DocumentStatus = "paid"
	DocumentStatusOverdue   DocumentStatus = "overdue"
	DocumentStatusCancelled DocumentStatus = "cancelled"
)

// AllowsStatus reports whether s is part of k's lifecycle.
func (k DocumentKind) AllowsStatus(s DocumentStatus) bool {
	switch k {
	case DocumentKindInvoice:
		switch s {
		case DocumentStatusPending, DocumentStatusPaid, DocumentStatusOverdue, DocumentStatusCancelled:
			return true
		}
	case DocumentKindQuote, DocumentKindProposal:
		switch s {
		case DocumentStatusPending, DocumentStatusAccepted, DocumentStatusRejected, DocumentStatusExpired:
			return true
		}
	}
	return false
}

// Customer is denormalized onto every document so exports and listings do
// not depend on the customer registry.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// DocumentItem is a stored line item. Type is "item" for parts and "labor"
// for labor, as produced by pricing.Payload.
type DocumentItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

func (i DocumentItem) Kind() pricing.Kind {
	return pricing.KindFromItemType(i.Type)
}

// DocumentHeader holds the non-item fields a user edits on a document form.
type DocumentHeader struct {
	Customer       Customer
	Title          string
	Date           time.Time
	ValidUntil     time.Time
	DueDate        time.Time
	Notes          string
	ProposalLetter string
	Simplified     bool
}

// Document is a quote, invoice or proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (kind-index): kind, sorted by created_at
//
// TotalAmount is always the grand total computed by the pricing engine over
// Items; it is never accepted from clients.
type Document struct {
	ID               string          `json:"id"`
	Number           string          `json:"number"`
	Kind             DocumentKind    `json:"kind"`
	Customer         Customer        `json:"customer"`
	Title            string          `json:"title"`
	Date             time.Time       `json:"date"`
	ValidUntil       time.Time       `json:"valid_until"`
	DueDate          time.Time       `json:"due_date"`
	Status           DocumentStatus  `json:"status"`
	Notes            string          `json:"notes"`
	ProposalLetter   string          `json:"proposal_letter"`
	Simplified       bool            `json:"simplified"`
	MarkupPercent    decimal.Decimal `json:"markup_percent"`
	SourceDocumentID string          `json:"source_document_id"`
	Items            []DocumentItem  `json:"items"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// PricingSource exposes the stored items to the pricing engine.
func (d Document) PricingSource() pricing.Source {
	items := make([]pricing.SourceItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, pricing.SourceItem{
			ID:          it.ID,
			Description: it.Description,
			Kind:        it.Kind(),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return pricing.Source{Items: items, MarkupPercent: d.MarkupPercent}
}

// Totals recomputes the parts/labor split of the stored items.
func (d Document) Totals() pricing.Totals {
	return pricing.Restore(d.PricingSource()).Snapshot().Totals
}

// ApplyHeader copies the editable header fields onto d.
func (d *Document) ApplyHeader(h DocumentHeader) {
	d.Customer = h.Customer
	d.Title = h.Title
	d.Date = h.Date
	d.ValidUntil = h.ValidUntil
	d.DueDate = h.DueDate
	d.Notes = h.Notes
	d.ProposalLetter = h.ProposalLetter
	d.Simplified = h.Simplified
}

// ApplyPayload replaces the items, markup and total with the engine's output.
func (d *Document) ApplyPayload(p pricing.Payload) {
	items := make([]DocumentItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, DocumentItem{
			ID:          it.ID,
			Description: it.Description,
			Type:        it.Type,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	d.Items = items
	d.MarkupPercent = p.MarkupPercent
	d.TotalAmount = p.TotalAmount
}
