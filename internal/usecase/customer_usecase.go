package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"business_manager/internal/domain/entities"
	"business_manager/internal/usecase/interfaces"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidCustomerName = errors.New("invalid customer name")
)

var documentKinds = []entities.DocumentKind{
	entities.DocumentKindQuote,
	entities.DocumentKindInvoice,
	entities.DocumentKindProposal,
}

// ICustomerUseCase manages the customer registry documents are issued to.
type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error)
	Update(ctx context.Context, id string, c entities.CustomerProfile) (entities.CustomerProfile, error)
	GetByID(ctx context.Context, id string) (entities.CustomerProfile, error)
	List(ctx context.Context, search string) ([]entities.CustomerProfile, error)
	Delete(ctx context.Context, id string) (int, error)
}

type CustomerUseCase struct {
	customers interfaces.ICustomerRepository
	documents interfaces.IDocumentRepository
	now       func() time.Time
	logger    zerolog.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(customers interfaces.ICustomerRepository, documents interfaces.IDocumentRepository, logger zerolog.Logger) *CustomerUseCase {
	return &CustomerUseCase{
		customers: customers,
		documents: documents,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error) {
	c, err := normalizeCustomer(c)
	if err != nil {
		return entities.CustomerProfile{}, err
	}
	c.ID = uuid.NewString()
	c.CreatedAt = u.now()
	c.UpdatedAt = c.CreatedAt

	created, err := u.customers.Create(ctx, c)
	if err != nil {
		u.logger.Error().Err(err).Str("name", c.Name).Msg("create customer failed")
		return entities.CustomerProfile{}, err
	}
	u.logger.Info().Str("customer_id", created.ID).Msg("customer created")
	return created, nil
}

// Update replaces the contact fields of a customer. Documents keep the
// customer snapshot taken when they were issued.
func (u *CustomerUseCase) Update(ctx context.Context, id string, c entities.CustomerProfile) (entities.CustomerProfile, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CustomerProfile{}, err
	}
	c, err = normalizeCustomer(c)
	if err != nil {
		return entities.CustomerProfile{}, err
	}
	c.ID = current.ID
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = u.now()

	updated, err := u.customers.Update(ctx, c)
	if err != nil {
		u.logger.Error().Err(err).Str("customer_id", c.ID).Msg("update customer failed")
		return entities.CustomerProfile{}, err
	}
	if updated.ID == "" {
		return entities.CustomerProfile{}, ErrCustomerNotFound
	}
	u.logger.Info().Str("customer_id", updated.ID).Msg("customer updated")
	return updated, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.CustomerProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CustomerProfile{}, ErrInvalidCustomerID
	}
	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return entities.CustomerProfile{}, err
	}
	if c.ID == "" {
		return entities.CustomerProfile{}, ErrCustomerNotFound
	}
	return c, nil
}

// List returns customers newest first. search matches name, email or phone,
// ignoring case.
func (u *CustomerUseCase) List(ctx context.Context, search string) ([]entities.CustomerProfile, error) {
	all, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(search))

	out := make([]entities.CustomerProfile, 0, len(all))
	for _, c := range all {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) &&
			!strings.Contains(c.Phone, q) {
			continue
		}
		out = append(out, c)
	}
	slices.SortStableFunc(out, func(a, b entities.CustomerProfile) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

// Delete removes a customer together with every quote, invoice and
// proposal issued to them, and returns how many documents went with it.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) (int, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, kind := range documentKinds {
		docs, err := u.documents.ListByKind(ctx, kind)
		if err != nil {
			return removed, err
		}
		for _, d := range docs {
			if d.Customer.ID != c.ID {
				continue
			}
			deleted, err := u.documents.Delete(ctx, d.ID)
			if err != nil {
				u.logger.Error().Err(err).Str("customer_id", c.ID).Str("document_id", d.ID).Msg("delete customer document failed")
				return removed, err
			}
			if deleted {
				removed++
			}
		}
	}

	deleted, err := u.customers.Delete(ctx, c.ID)
	if err != nil {
		return removed, err
	}
	if !deleted {
		return removed, ErrCustomerNotFound
	}
	u.logger.Info().Str("customer_id", c.ID).Int("documents_removed", removed).Msg("customer deleted")
	return removed, nil
}

func normalizeCustomer(c entities.CustomerProfile) (entities.CustomerProfile, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	if c.Name == "" {
		return entities.CustomerProfile{}, ErrInvalidCustomerName
	}
	return c, nil
}
