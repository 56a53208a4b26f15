package interfaces

import (
	"context"

	"business_manager/internal/domain/entities"
)

// IDraftStore keeps open editing sessions. Implementations serialize access
// to a single draft; found is false for unknown ids.
type IDraftStore interface {
	Save(ctx context.Context, d *entities.Draft) error
	Get(ctx context.Context, id string) (view entities.DraftView, found bool, err error)
	// Mutate runs fn while holding the draft. fn reports whether it changed
	// anything, which is echoed in the returned view.
	Mutate(ctx context.Context, id string, fn func(d *entities.Draft) bool) (view entities.DraftView, found bool, err error)
	Delete(ctx context.Context, id string) (bool, error)
}
