package response

import (
	"time"

	"business_manager/internal/domain/entities"
)

type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type DocumentItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type DocumentResponse struct {
	ID               string                 `json:"id"`
	Number           string                 `json:"number"`
	Kind             string                 `json:"kind"`
	Customer         CustomerResponse       `json:"customer"`
	Title            string                 `json:"title"`
	Date             time.Time              `json:"date"`
	ValidUntil       *time.Time             `json:"valid_until,omitempty"`
	DueDate          *time.Time             `json:"due_date,omitempty"`
	Status           string                 `json:"status"`
	Notes            string                 `json:"notes,omitempty"`
	ProposalLetter   string                 `json:"proposal_letter,omitempty"`
	Simplified       bool                   `json:"simplified"`
	MarkupPercent    float64                `json:"markup_percent"`
	SourceDocumentID string                 `json:"source_document_id,omitempty"`
	Items            []DocumentItemResponse `json:"items"`
	PartsTotal       float64                `json:"parts_total"`
	LaborTotal       float64                `json:"labor_total"`
	TotalAmount      float64                `json:"total_amount"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

func FromDocument(d entities.Document) DocumentResponse {
	items := make([]DocumentItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, DocumentItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Type:        it.Type,
			Quantity:    quantity(it.Quantity),
			UnitPrice:   amount(it.UnitPrice),
			Total:       amount(it.Total),
		})
	}
	totals := d.Totals()
	return DocumentResponse{
		ID:     d.ID,
		Number: d.Number,
		Kind:   string(d.Kind),
		Customer: CustomerResponse{
			ID:      d.Customer.ID,
			Name:    d.Customer.Name,
			Email:   d.Customer.Email,
			Phone:   d.Customer.Phone,
			Address: d.Customer.Address,
		},
		Title:            d.Title,
		Date:             d.Date,
		ValidUntil:       optionalTime(d.ValidUntil),
		DueDate:          optionalTime(d.DueDate),
		Status:           string(d.Status),
		Notes:            d.Notes,
		ProposalLetter:   d.ProposalLetter,
		Simplified:       d.Simplified,
		MarkupPercent:    quantity(d.MarkupPercent),
		SourceDocumentID: d.SourceDocumentID,
		Items:            items,
		PartsTotal:       amount(totals.Parts),
		LaborTotal:       amount(totals.Labor),
		TotalAmount:      amount(d.TotalAmount),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// DocumentSummaryResponse is a list row.
type DocumentSummaryResponse struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	Kind        string    `json:"kind"`
	Customer    string    `json:"customer"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
}

func FromDocuments(docs []entities.Document) []DocumentSummaryResponse {
	out := make([]DocumentSummaryResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocumentSummaryResponse{
			ID:          d.ID,
			Number:      d.Number,
			Kind:        string(d.Kind),
			Customer:    d.Customer.Name,
			Title:       d.Title,
			Date:        d.Date,
			Status:      string(d.Status),
			TotalAmount: amount(d.TotalAmount),
		})
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
