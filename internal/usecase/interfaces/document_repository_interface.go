package interfaces

import (
	"context"

	"business_manager/internal/domain/entities"
)

// IDocumentRepository abstracts DynamoDB persistence for quotes, invoices
// and proposals.
//
// Lookups of missing documents return a zero-value Document and a nil error.
type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	Update(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	ListByKind(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error)
	UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error)
	Delete(ctx context.Context, id string) (bool, error)
	// NextNumber returns the next sequence value for kind within year.
	NextNumber(ctx context.Context, kind entities.DocumentKind, year int) (int64, error)
}
