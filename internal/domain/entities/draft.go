package entities

import (
	"time"

	"business_manager/internal/domain/pricing"
)

// Draft is a server-side editing session over one document form. The
// Assembler is owned by the draft; the store guards concurrent access.
//
// DocumentID is set when the draft edits an existing document, in which case
// submitting updates that document instead of creating a new one.
type Draft struct {
	ID         string
	Kind       DocumentKind
	DocumentID string
	SourceID   string
	Assembler  *pricing.Assembler
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DraftView is a detached copy of a draft's state, safe to hand out.
type DraftView struct {
	ID         string
	Kind       DocumentKind
	DocumentID string
	SourceID   string
	Snapshot   pricing.Snapshot
	Applied    bool
	UpdatedAt  time.Time
}

func (d *Draft) View(applied bool) DraftView {
	return DraftView{
		ID:         d.ID,
		Kind:       d.Kind,
		DocumentID: d.DocumentID,
		SourceID:   d.SourceID,
		Snapshot:   d.Assembler.Snapshot(),
		Applied:    applied,
		UpdatedAt:  d.UpdatedAt,
	}
}
