package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"business_manager/internal/domain/entities"
	"business_manager/internal/domain/pricing"
)

var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

type CustomerRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// DocumentHeaderRequest carries the form fields around the item list.
// Dates are YYYY-MM-DD or RFC 3339; empty dates get defaults downstream.
type DocumentHeaderRequest struct {
	Customer       CustomerRequest `json:"customer"`
	Title          string          `json:"title"`
	Date           string          `json:"date"`
	ValidUntil     string          `json:"valid_until"`
	DueDate        string          `json:"due_date"`
	Notes          string          `json:"notes"`
	ProposalLetter string          `json:"proposal_letter"`
	Simplified     bool            `json:"simplified"`
}

func (r DocumentHeaderRequest) ToHeader() (entities.DocumentHeader, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return entities.DocumentHeader{}, err
	}
	validUntil, err := parseDate(r.ValidUntil)
	if err != nil {
		return entities.DocumentHeader{}, err
	}
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return entities.DocumentHeader{}, err
	}
	return entities.DocumentHeader{
		Customer: entities.Customer{
			ID:      strings.TrimSpace(r.Customer.ID),
			Name:    strings.TrimSpace(r.Customer.Name),
			Email:   strings.TrimSpace(r.Customer.Email),
			Phone:   strings.TrimSpace(r.Customer.Phone),
			Address: strings.TrimSpace(r.Customer.Address),
		},
		Title:          strings.TrimSpace(r.Title),
		Date:           date,
		ValidUntil:     validUntil,
		DueDate:        dueDate,
		Notes:          r.Notes,
		ProposalLetter: r.ProposalLetter,
		Simplified:     r.Simplified,
	}, nil
}

type DocumentItemRequest struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Quantity    RawNumber `json:"quantity"`
	UnitPrice   RawNumber `json:"unit_price"`
}

// UpdateDocumentRequest replaces a document's header and items in one call.
// Item totals and the document total are recomputed server side.
type UpdateDocumentRequest struct {
	DocumentHeaderRequest
	MarkupPercent RawNumber             `json:"markup_percent"`
	Items         []DocumentItemRequest `json:"items"`
}

// ToPayload converts the items. Rows with a quantity or unit price that is
// not a number are reported as an error rather than silently dropped.
func (r UpdateDocumentRequest) ToPayload() (pricing.Payload, error) {
	markup := decimal.Zero
	if r.MarkupPercent != "" {
		m, ok := pricing.ParseAmount(r.MarkupPercent.String())
		if !ok {
			return pricing.Payload{}, ErrInvalidAmount
		}
		markup = m
	}
	items := make([]pricing.PayloadItem, 0, len(r.Items))
	for _, it := range r.Items {
		qty, ok := pricing.ParseAmount(it.Quantity.String())
		if !ok {
			return pricing.Payload{}, ErrInvalidAmount
		}
		price, ok := pricing.ParseAmount(it.UnitPrice.String())
		if !ok {
			return pricing.Payload{}, ErrInvalidAmount
		}
		items = append(items, pricing.PayloadItem{
			ID:          strings.TrimSpace(it.ID),
			Description: strings.TrimSpace(it.Description),
			Quantity:    qty,
			UnitPrice:   price,
			Type:        pricing.KindFromItemType(it.Type).ItemType(),
		})
	}
	return pricing.Payload{Items: items, MarkupPercent: markup}, nil
}

type DocumentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ConvertQuoteRequest bills a quote. A missing markup keeps the quote's.
type ConvertQuoteRequest struct {
	Markup *RawNumber `json:"markup"`
}

func (r ConvertQuoteRequest) MarkupPercent() (*decimal.Decimal, error) {
	if r.Markup == nil || *r.Markup == "" {
		return nil, nil
	}
	m, ok := pricing.ParseAmount(r.Markup.String())
	if !ok {
		return nil, ErrInvalidAmount
	}
	return &m, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}
