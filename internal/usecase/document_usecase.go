package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
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
	ErrDocumentNotFound      = errors.New("document not found")
	ErrInvalidDocumentID     = errors.New("invalid document id")
	ErrInvalidDocumentKind   = errors.New("invalid document kind")
	ErrInvalidDocumentStatus = errors.New("invalid document status")
	ErrInvalidDocumentItems  = errors.New("invalid document items")
	ErrInvalidCustomer       = errors.New("invalid customer")
	ErrNotAQuote             = errors.New("document is not a quote")
	ErrQuoteNotAccepted      = errors.New("quote not accepted")
)

// DocumentSettings carries the configurable parts of document handling.
type DocumentSettings struct {
	RebaseMode        pricing.RebaseMode
	QuoteValidityDays int
	InvoiceDueDays    int
}

// CreateDocumentInput is everything needed to store a new document. The
// payload normally comes from a draft's pricing.Assembler.
type CreateDocumentInput struct {
	Kind             entities.DocumentKind
	Header           entities.DocumentHeader
	Payload          pricing.Payload
	SourceDocumentID string
}

// IDocumentUseCase manages quotes, invoices and proposals.
type IDocumentUseCase interface {
	Create(ctx context.Context, in CreateDocumentInput) (entities.Document, error)
	Update(ctx context.Context, id string, header entities.DocumentHeader, payload pricing.Payload) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	ListByKind(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error)
	UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error)
	Delete(ctx context.Context, id string) error
	ConvertQuoteToInvoice(ctx context.Context, quoteID string, markup *decimal.Decimal) (entities.Document, error)
}

type DocumentUseCase struct {
	repo     interfaces.IDocumentRepository
	settings DocumentSettings
	logger   zerolog.Logger
	now      func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.IDocumentRepository, settings DocumentSettings, logger zerolog.Logger) *DocumentUseCase {
	if settings.RebaseMode == "" {
		settings.RebaseMode = pricing.RebaseFromTotal
	}
	if settings.QuoteValidityDays <= 0 {
		settings.QuoteValidityDays = 30
	}
	if settings.InvoiceDueDays <= 0 {
		settings.InvoiceDueDays = 30
	}
	return &DocumentUseCase{
		repo:     repo,
		settings: settings,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *DocumentUseCase) Create(ctx context.Context, in CreateDocumentInput) (entities.Document, error) {
	if !in.Kind.Valid() {
		return entities.Document{}, ErrInvalidDocumentKind
	}
	header, err := normalizeHeader(in.Header)
	if err != nil {
		return entities.Document{}, err
	}
	payload, err := normalizePayload(in.Payload)
	if err != nil {
		return entities.Document{}, err
	}

	now := u.now()
	d := entities.Document{
		ID:               uuid.NewString(),
		Kind:             in.Kind,
		Status:           entities.DocumentStatusPending,
		SourceDocumentID: strings.TrimSpace(in.SourceDocumentID),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	d.ApplyHeader(header)
	d.ApplyPayload(payload)
	u.applyDateDefaults(&d, now)

	seq, err := u.repo.NextNumber(ctx, d.Kind, d.Date.Year())
	if err != nil {
		u.logger.Error().Err(err).Str("kind", string(d.Kind)).Msg("next document number failed")
		return entities.Document{}, err
	}
	d.Number = FormatDocumentNumber(d.Kind, d.Date.Year(), seq)

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		u.logger.Error().Err(err).Str("document_id", d.ID).Str("number", d.Number).Msg("create document failed")
		return entities.Document{}, err
	}
	u.logger.Info().
		Str("document_id", created.ID).
		Str("number", created.Number).
		Str("kind", string(created.Kind)).
		Str("total", created.TotalAmount.String()).
		Msg("document created")
	return created, nil
}

// Update replaces the header and items of an existing document. Number,
// kind, status and source are kept.
func (u *DocumentUseCase) Update(ctx context.Context, id string, header entities.DocumentHeader, payload pricing.Payload) (entities.Document, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	header, err = normalizeHeader(header)
	if err != nil {
		return entities.Document{}, err
	}
	payload, err = normalizePayload(payload)
	if err != nil {
		return entities.Document{}, err
	}

	now := u.now()
	existing.ApplyHeader(header)
	existing.ApplyPayload(payload)
	u.applyDateDefaults(&existing, existing.CreatedAt)
	existing.UpdatedAt = now

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		u.logger.Error().Err(err).Str("document_id", existing.ID).Msg("update document failed")
		return entities.Document{}, err
	}
	if updated.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	u.logger.Info().Str("document_id", updated.ID).Str("total", updated.TotalAmount.String()).Msg("document updated")
	return updated, nil
}

func (u *DocumentUseCase) GetByID(ctx context.Context, id string) (entities.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if d.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return d, nil
}

// ListByKind returns documents of kind, newest first.
func (u *DocumentUseCase) ListByKind(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error) {
	if !kind.Valid() {
		return nil, ErrInvalidDocumentKind
	}
	docs, err := u.repo.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(docs, func(a, b entities.Document) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return docs, nil
}

func (u *DocumentUseCase) UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if !d.Kind.AllowsStatus(status) {
		u.logger.Warn().Str("document_id", d.ID).Str("kind", string(d.Kind)).Str("status", string(status)).Msg("status not allowed for kind")
		return entities.Document{}, ErrInvalidDocumentStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, d.ID, status)
	if err != nil {
		return entities.Document{}, err
	}
	if updated.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	u.logger.Info().Str("document_id", updated.ID).Str("from", string(d.Status)).Str("to", string(updated.Status)).Msg("document status updated")
	return updated, nil
}

func (u *DocumentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidDocumentID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDocumentNotFound
	}
	u.logger.Info().Str("document_id", id).Msg("document deleted")
	return nil
}

// ConvertQuoteToInvoice creates a pending invoice from an accepted quote.
// Items are copied through the pricing engine under markup (the quote's own
// markup when nil), so part prices follow the configured rebase mode.
func (u *DocumentUseCase) ConvertQuoteToInvoice(ctx context.Context, quoteID string, markup *decimal.Decimal) (entities.Document, error) {
	quote, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Document{}, err
	}
	if quote.Kind != entities.DocumentKindQuote {
		return entities.Document{}, ErrNotAQuote
	}
	if quote.Status != entities.DocumentStatusAccepted {
		return entities.Document{}, ErrQuoteNotAccepted
	}

	percent := quote.MarkupPercent
	if markup != nil {
		percent = *markup
	}
	a := pricing.NewAssembler(pricing.WithRebaseMode(u.settings.RebaseMode))
	if _, ok := a.LoadFromSource(quote.PricingSource(), percent); !ok {
		u.logger.Warn().Str("quote_id", quote.ID).Msg("invalid quote items dropped while converting")
	}

	invoice, err := u.Create(ctx, CreateDocumentInput{
		Kind: entities.DocumentKindInvoice,
		Header: entities.DocumentHeader{
			Customer: quote.Customer,
			Title:    quote.Title,
			Notes:    quote.Notes,
		},
		Payload:          a.Payload(),
		SourceDocumentID: quote.ID,
	})
	if err != nil {
		return entities.Document{}, err
	}
	u.logger.Info().
		Str("quote_id", quote.ID).
		Str("invoice_id", invoice.ID).
		Str("rebase", string(u.settings.RebaseMode)).
		Msg("quote converted to invoice")
	return invoice, nil
}

// FormatDocumentNumber renders numbers like Q-2026-0042.
func FormatDocumentNumber(kind entities.DocumentKind, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%04d", kind.NumberPrefix(), year, seq)
}

func (u *DocumentUseCase) applyDateDefaults(d *entities.Document, now time.Time) {
	if d.Date.IsZero() {
		d.Date = now
	}
	switch d.Kind {
	case entities.DocumentKindInvoice:
		d.ValidUntil = time.Time{}
		if d.DueDate.IsZero() {
			d.DueDate = d.Date.AddDate(0, 0, u.settings.InvoiceDueDays)
		}
	default:
		d.DueDate = time.Time{}
		if d.ValidUntil.IsZero() {
			d.ValidUntil = d.Date.AddDate(0, 0, u.settings.QuoteValidityDays)
		}
	}
}

func normalizeHeader(h entities.DocumentHeader) (entities.DocumentHeader, error) {
	h.Customer.ID = strings.TrimSpace(h.Customer.ID)
	h.Customer.Name = strings.TrimSpace(h.Customer.Name)
	h.Customer.Email = strings.TrimSpace(h.Customer.Email)
	if h.Customer.ID == "" && h.Customer.Name == "" {
		return entities.DocumentHeader{}, ErrInvalidCustomer
	}
	h.Title = strings.TrimSpace(h.Title)
	h.Notes = strings.TrimSpace(h.Notes)
	return h, nil
}

// normalizePayload recomputes every total through the pricing engine so a
// stored document never carries a client-supplied total.
func normalizePayload(p pricing.Payload) (pricing.Payload, error) {
	items := make([]pricing.SourceItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, pricing.SourceItem{
			ID:          it.ID,
			Description: strings.TrimSpace(it.Description),
			Kind:        pricing.KindFromItemType(it.Type),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	a := pricing.Restore(pricing.Source{Items: items, MarkupPercent: p.MarkupPercent})
	out := a.Payload()
	if len(out.Items) != len(p.Items) {
		return pricing.Payload{}, ErrInvalidDocumentItems
	}
	return out, nil
}
