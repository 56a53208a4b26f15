package request

// OpenDraftRequest starts a draft. Markup defaults to zero; DocumentID opens
// the draft over an existing document instead.
type OpenDraftRequest struct {
	Kind       string    `json:"kind"`
	Markup     RawNumber `json:"markup"`
	DocumentID string    `json:"document_id"`
}

type AddPartRequest struct {
	PartID   string    `json:"part_id" binding:"required"`
	Quantity RawNumber `json:"quantity"`
}

type AddLaborRequest struct {
	LaborRateID string    `json:"labor_rate_id" binding:"required"`
	Hours       RawNumber `json:"hours"`
}

// UpdateItemRequest edits one line item; fields left out are not touched.
type UpdateItemRequest struct {
	Quantity  *RawNumber `json:"quantity"`
	UnitPrice *RawNumber `json:"unit_price"`
}

type MarkupRequest struct {
	Markup RawNumber `json:"markup"`
}

type LoadDraftRequest struct {
	SourceDocumentID string    `json:"source_document_id" binding:"required"`
	Markup           RawNumber `json:"markup"`
}
