package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"business_manager/internal/domain/entities"
	"business_manager/internal/domain/pricing"
	"business_manager/internal/usecase/interfaces"
)

var (
	ErrDraftNotFound  = errors.New("draft not found")
	ErrInvalidDraftID = errors.New("invalid draft id")
)

// IDraftUseCase drives the document forms. Numeric inputs arrive as the raw
// text the user typed; input that is not a valid number is ignored and
// reported through DraftView.Applied, never as an error.
type IDraftUseCase interface {
	Open(ctx context.Context, kind entities.DocumentKind, markup string) (entities.DraftView, error)
	Edit(ctx context.Context, documentID string) (entities.DraftView, error)
	Get(ctx context.Context, id string) (entities.DraftView, error)
	AddPart(ctx context.Context, id, partID, quantity string) (entities.DraftView, error)
	AddLabor(ctx context.Context, id, laborRateID, hours string) (entities.DraftView, error)
	RemoveItem(ctx context.Context, id, itemID string) (entities.DraftView, error)
	SetQuantity(ctx context.Context, id, itemID, quantity string) (entities.DraftView, error)
	SetUnitPrice(ctx context.Context, id, itemID, price string) (entities.DraftView, error)
	SetMarkup(ctx context.Context, id, markup string) (entities.DraftView, error)
	LoadFromDocument(ctx context.Context, id, sourceDocumentID, markup string) (entities.DraftView, error)
	Submit(ctx context.Context, id string, header entities.DocumentHeader) (entities.Document, error)
	Discard(ctx context.Context, id string) error
}

type DraftUseCase struct {
	store     interfaces.IDraftStore
	catalog   ICatalogUseCase
	documents IDocumentUseCase
	rebase    pricing.RebaseMode
	logger    zerolog.Logger
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(store interfaces.IDraftStore, catalog ICatalogUseCase, documents IDocumentUseCase, rebase pricing.RebaseMode, logger zerolog.Logger) *DraftUseCase {
	return &DraftUseCase{store: store, catalog: catalog, documents: documents, rebase: rebase, logger: logger}
}

func (u *DraftUseCase) Open(ctx context.Context, kind entities.DocumentKind, markup string) (entities.DraftView, error) {
	if !kind.Valid() {
		return entities.DraftView{}, ErrInvalidDocumentKind
	}
	percent, ok := pricing.ParseAmount(markup)
	if !ok {
		percent = decimal.Zero
	}
	return u.save(ctx, &entities.Draft{
		ID:        uuid.NewString(),
		Kind:      kind,
		Assembler: pricing.NewAssembler(pricing.WithRebaseMode(u.rebase), pricing.WithMarkup(percent)),
	})
}

// Edit opens a draft over an existing document. Submitting it updates the
// document in place.
func (u *DraftUseCase) Edit(ctx context.Context, documentID string) (entities.DraftView, error) {
	doc, err := u.documents.GetByID(ctx, documentID)
	if err != nil {
		return entities.DraftView{}, err
	}
	return u.save(ctx, &entities.Draft{
		ID:         uuid.NewString(),
		Kind:       doc.Kind,
		DocumentID: doc.ID,
		SourceID:   doc.SourceDocumentID,
		Assembler:  pricing.Restore(doc.PricingSource(), pricing.WithRebaseMode(u.rebase)),
	})
}

func (u *DraftUseCase) Get(ctx context.Context, id string) (entities.DraftView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DraftView{}, ErrInvalidDraftID
	}
	view, found, err := u.store.Get(ctx, id)
	if err != nil {
		return entities.DraftView{}, err
	}
	if !found {
		return entities.DraftView{}, ErrDraftNotFound
	}
	return view, nil
}

// AddPart adds a catalog part. An empty quantity means one; an unknown part
// leaves the draft unchanged.
func (u *DraftUseCase) AddPart(ctx context.Context, id, partID, quantity string) (entities.DraftView, error) {
	qty, ok := parseQuantity(quantity)
	part, err := u.catalog.GetPart(ctx, partID)
	switch {
	case errors.Is(err, ErrPartNotFound), errors.Is(err, ErrInvalidCatalogID):
		ok = false
	case err != nil:
		return entities.DraftView{}, err
	}
	return u.mutate(ctx, id, func(d *entities.Draft) bool {
		if !ok {
			return false
		}
		_, applied := d.Assembler.AddPart(part.Entry(), qty)
		return applied
	})
}

func (u *DraftUseCase) AddLabor(ctx context.Context, id, laborRateID, hours string) (entities.DraftView, error) {
	qty, ok := parseQuantity(hours)
	rate, err := u.catalog.GetLaborRate(ctx, laborRateID)
	switch {
	case errors.Is(err, ErrLaborRateNotFound), errors.Is(err, ErrInvalidCatalogID):
		ok = false
	case err != nil:
		return entities.DraftView{}, err
	}
	return u.mutate(ctx, id, func(d *entities.Draft) bool {
		if !ok {
			return false
		}
		_, applied := d.Assembler.AddLabor(rate.Entry(), qty)
		return applied
	})
}

func (u *DraftUseCase) RemoveItem(ctx context.Context, id, itemID string) (entities.DraftView, error) {
	return u.mutate(ctx, id, func(d *entities.Draft) bool {
		_, applied := d.Assembler.RemoveItem(itemID)
		return applied
	})
}

func (u *DraftUseCase) SetQuantity(ctx context.Context, id, itemID, quantity string) (entities.DraftView, error) {
	qty, ok := pricing.ParseAmount(quantity)
	return u.mutate(ctx, id, func(d *entities.Draft) bool {
		if !ok {
			return false
		}
		_, applied := d.Assembler.SetQuantity(itemID, qty)
		return applied
	})
}

func (u *DraftUseCase) SetUnitPrice(ctx context.Context, id, itemID, price string) (entities.DraftView, error) {
	p, ok := pricing.ParseAmount(price)
	return u.mutate(ctx, id, func(d *entities.Draft) bool {
		if !ok {
			return false
		}
		_, applied := d.Assembler.SetUnitPrice(itemID, p)
		return applied
	})
}

func (u *DraftUseCase) SetMarkup(ctx context.Context, id, markup string) (entities.DraftView, error) {
	percent, ok := pricing.ParseAmount(markup)
	return u.mutate(ctx, id, func(d *entities.Draft) bool {
		if !ok {
			return false
		}
		_, applied := d.Assembler.SetMarkup(percent)
		return applied
	})
}

// LoadFromDocument replaces the draft's items with a copy of another
// document's items, e.g. to bill a quote. An empty markup keeps the source
// document's markup.
func (u *DraftUseCase) LoadFromDocument(ctx context.Context, id, sourceDocumentID, markup string) (entities.DraftView, error) {
	src, err := u.documents.GetByID(ctx, sourceDocumentID)
	if err != nil {
		return entities.DraftView{}, err
	}
	percent := src.MarkupPercent
	if strings.TrimSpace(markup) != "" {
		p, ok := pricing.ParseAmount(markup)
		if !ok {
			return u.mutate(ctx, id, func(*entities.Draft) bool { return false })
		}
		percent = p
	}

	view, err := u.mutate(ctx, id, func(d *entities.Draft) bool {
		_, applied := d.Assembler.LoadFromSource(src.PricingSource(), percent)
		d.SourceID = src.ID
		return applied
	})
	if err != nil {
		return entities.DraftView{}, err
	}
	u.logger.Info().
		Str("draft_id", view.ID).
		Str("source_id", src.ID).
		Str("rebase", string(u.rebase)).
		Bool("applied", view.Applied).
		Msg("draft loaded from document")
	return view, nil
}

// Submit stores the draft as a document, or updates the document it was
// opened from, and closes the draft.
func (u *DraftUseCase) Submit(ctx context.Context, id string, header entities.DocumentHeader) (entities.Document, error) {
	var (
		kind       entities.DocumentKind
		documentID string
		sourceID   string
		payload    pricing.Payload
	)
	if _, err := u.mutate(ctx, id, func(d *entities.Draft) bool {
		kind, documentID, sourceID = d.Kind, d.DocumentID, d.SourceID
		payload = d.Assembler.Payload()
		return false
	}); err != nil {
		return entities.Document{}, err
	}

	var (
		doc entities.Document
		err error
	)
	if documentID != "" {
		doc, err = u.documents.Update(ctx, documentID, header, payload)
	} else {
		doc, err = u.documents.Create(ctx, CreateDocumentInput{
			Kind:             kind,
			Header:           header,
			Payload:          payload,
			SourceDocumentID: sourceID,
		})
	}
	if err != nil {
		u.logger.Warn().Err(err).Str("draft_id", id).Msg("draft submit failed")
		return entities.Document{}, err
	}

	if _, err := u.store.Delete(ctx, id); err != nil {
		u.logger.Error().Err(err).Str("draft_id", id).Msg("draft cleanup failed")
	}
	u.logger.Info().Str("draft_id", id).Str("document_id", doc.ID).Str("number", doc.Number).Msg("draft submitted")
	return doc, nil
}

func (u *DraftUseCase) Discard(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidDraftID
	}
	deleted, err := u.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDraftNotFound
	}
	return nil
}

func (u *DraftUseCase) save(ctx context.Context, d *entities.Draft) (entities.DraftView, error) {
	now := time.Now().UTC()
	d.CreatedAt, d.UpdatedAt = now, now
	if err := u.store.Save(ctx, d); err != nil {
		u.logger.Error().Err(err).Str("draft_id", d.ID).Msg("save draft failed")
		return entities.DraftView{}, err
	}
	u.logger.Debug().Str("draft_id", d.ID).Str("kind", string(d.Kind)).Msg("draft opened")
	return d.View(true), nil
}

func (u *DraftUseCase) mutate(ctx context.Context, id string, fn func(d *entities.Draft) bool) (entities.DraftView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DraftView{}, ErrInvalidDraftID
	}
	view, found, err := u.store.Mutate(ctx, id, fn)
	if err != nil {
		return entities.DraftView{}, err
	}
	if !found {
		return entities.DraftView{}, ErrDraftNotFound
	}
	return view, nil
}

// parseQuantity treats empty input as one unit.
func parseQuantity(raw string) (decimal.Decimal, bool) {
	if strings.TrimSpace(raw) == "" {
		return decimal.NewFromInt(1), true
	}
	return pricing.ParseAmount(raw)
}
