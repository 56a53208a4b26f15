package response

import (
	"time"

	"business_manager/internal/domain/entities"
	"business_manager/internal/domain/pricing"
)

type DraftItemResponse struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Quantity    float64  `json:"quantity"`
	BasePrice   *float64 `json:"base_price,omitempty"`
	UnitPrice   float64  `json:"unit_price"`
	Total       float64  `json:"total"`
}

// DraftResponse is the form state after an edit. Applied is false when the
// edit was ignored, e.g. for a quantity that is not a number.
type DraftResponse struct {
	ID            string              `json:"id"`
	Kind          string              `json:"kind"`
	DocumentID    string              `json:"document_id,omitempty"`
	SourceID      string              `json:"source_document_id,omitempty"`
	Applied       bool                `json:"applied"`
	MarkupPercent float64             `json:"markup_percent"`
	Parts         []DraftItemResponse `json:"parts"`
	Labor         []DraftItemResponse `json:"labor"`
	PartsTotal    float64             `json:"parts_total"`
	LaborTotal    float64             `json:"labor_total"`
	TotalAmount   float64             `json:"total_amount"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromDraft(v entities.DraftView) DraftResponse {
	snap := v.Snapshot
	toItems := func(items []pricing.LineItem) []DraftItemResponse {
		out := make([]DraftItemResponse, 0, len(items))
		for _, it := range items {
			r := DraftItemResponse{
				ID:          it.ID(),
				Description: it.Description(),
				Type:        it.Kind().ItemType(),
				Quantity:    quantity(it.Quantity()),
				UnitPrice:   amount(it.UnitPrice()),
				Total:       amount(it.Total()),
			}
			if base, ok := it.BasePrice(); ok {
				b := amount(base)
				r.BasePrice = &b
			}
			out = append(out, r)
		}
		return out
	}
	return DraftResponse{
		ID:            v.ID,
		Kind:          string(v.Kind),
		DocumentID:    v.DocumentID,
		SourceID:      v.SourceID,
		Applied:       v.Applied,
		MarkupPercent: quantity(snap.MarkupPercent),
		Parts:         toItems(snap.Parts()),
		Labor:         toItems(snap.Labor()),
		PartsTotal:    amount(snap.Totals.Parts),
		LaborTotal:    amount(snap.Totals.Labor),
		TotalAmount:   amount(snap.Totals.GrandTotal),
		UpdatedAt:     v.UpdatedAt,
	}
}
