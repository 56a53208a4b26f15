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
	ErrPartNotFound       = errors.New("part not found")
	ErrLaborRateNotFound  = errors.New("labor rate not found")
	ErrInvalidCatalogID   = errors.New("invalid catalog id")
	ErrInvalidCatalogName = errors.New("invalid catalog name")
	ErrInvalidCatalogRate = errors.New("invalid catalog price")
)

// ICatalogUseCase exposes the parts and labor rates items are picked from.
type ICatalogUseCase interface {
	CreatePart(ctx context.Context, p entities.Part) (entities.Part, error)
	UpdatePart(ctx context.Context, id string, p entities.Part) (entities.Part, error)
	DeletePart(ctx context.Context, id string) error
	ImportParts(ctx context.Context, table entities.Table) (entities.ImportResult, error)
	GetPart(ctx context.Context, id string) (entities.Part, error)
	ListParts(ctx context.Context, filter entities.PartFilter) ([]entities.Part, error)
	ListBrands(ctx context.Context) ([]string, error)
	ListCategories(ctx context.Context, brand string) ([]string, error)
	CreateLaborRate(ctx context.Context, l entities.LaborRate) (entities.LaborRate, error)
	UpdateLaborRate(ctx context.Context, id string, l entities.LaborRate) (entities.LaborRate, error)
	DeleteLaborRate(ctx context.Context, id string) error
	ImportLaborRates(ctx context.Context, table entities.Table) (entities.ImportResult, error)
	GetLaborRate(ctx context.Context, id string) (entities.LaborRate, error)
	ListLaborRates(ctx context.Context) ([]entities.LaborRate, error)
}

type CatalogUseCase struct {
	parts  interfaces.IPartRepository
	labor  interfaces.ILaborRateRepository
	logger zerolog.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(parts interfaces.IPartRepository, labor interfaces.ILaborRateRepository, logger zerolog.Logger) *CatalogUseCase {
	return &CatalogUseCase{parts: parts, labor: labor, logger: logger}
}

func (u *CatalogUseCase) CreatePart(ctx context.Context, p entities.Part) (entities.Part, error) {
	p, err := normalizePart(p)
	if err != nil {
		return entities.Part{}, err
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	created, err := u.parts.Create(ctx, p)
	if err != nil {
		u.logger.Error().Err(err).Str("name", p.Name).Msg("create part failed")
		return entities.Part{}, err
	}
	u.logger.Info().Str("part_id", created.ID).Str("brand", created.Brand).Msg("part created")
	return created, nil
}

// UpdatePart replaces the editable fields of a part. Documents already
// holding the part keep the price they were priced at.
func (u *CatalogUseCase) UpdatePart(ctx context.Context, id string, p entities.Part) (entities.Part, error) {
	current, err := u.GetPart(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	p, err = normalizePart(p)
	if err != nil {
		return entities.Part{}, err
	}
	p.ID = current.ID
	p.CreatedAt = current.CreatedAt

	updated, err := u.parts.Update(ctx, p)
	if err != nil {
		u.logger.Error().Err(err).Str("part_id", p.ID).Msg("update part failed")
		return entities.Part{}, err
	}
	if updated.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	u.logger.Info().Str("part_id", updated.ID).Msg("part updated")
	return updated, nil
}

func (u *CatalogUseCase) DeletePart(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogID
	}
	deleted, err := u.parts.Delete(ctx, id)
	if err != nil {
		u.logger.Error().Err(err).Str("part_id", id).Msg("delete part failed")
		return err
	}
	if !deleted {
		return ErrPartNotFound
	}
	u.logger.Info().Str("part_id", id).Msg("part deleted")
	return nil
}

func (u *CatalogUseCase) GetPart(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidCatalogID
	}
	p, err := u.parts.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if p.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}

// ListParts returns parts sorted by brand and then name. Filters match
// exactly; an empty filter field matches every part.
func (u *CatalogUseCase) ListParts(ctx context.Context, filter entities.PartFilter) ([]entities.Part, error) {
	all, err := u.parts.List(ctx)
	if err != nil {
		return nil, err
	}
	brand := strings.TrimSpace(filter.Brand)
	category := strings.TrimSpace(filter.Category)

	out := make([]entities.Part, 0, len(all))
	for _, p := range all {
		if brand != "" && p.Brand != brand {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	slices.SortStableFunc(out, func(a, b entities.Part) int {
		if c := strings.Compare(a.Brand, b.Brand); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (u *CatalogUseCase) ListBrands(ctx context.Context) ([]string, error) {
	all, err := u.parts.List(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(all, func(p entities.Part) string { return p.Brand }), nil
}

// ListCategories lists the categories available within brand, or across all
// parts when brand is empty.
func (u *CatalogUseCase) ListCategories(ctx context.Context, brand string) ([]string, error) {
	parts, err := u.ListParts(ctx, entities.PartFilter{Brand: brand})
	if err != nil {
		return nil, err
	}
	return distinct(parts, func(p entities.Part) string { return p.Category }), nil
}

func (u *CatalogUseCase) CreateLaborRate(ctx context.Context, l entities.LaborRate) (entities.LaborRate, error) {
	l, err := normalizeLaborRate(l)
	if err != nil {
		return entities.LaborRate{}, err
	}

	l.ID = uuid.NewString()
	l.CreatedAt = time.Now().UTC()
	created, err := u.labor.Create(ctx, l)
	if err != nil {
		u.logger.Error().Err(err).Str("name", l.Name).Msg("create labor rate failed")
		return entities.LaborRate{}, err
	}
	u.logger.Info().Str("labor_rate_id", created.ID).Msg("labor rate created")
	return created, nil
}

func (u *CatalogUseCase) UpdateLaborRate(ctx context.Context, id string, l entities.LaborRate) (entities.LaborRate, error) {
	current, err := u.GetLaborRate(ctx, id)
	if err != nil {
		return entities.LaborRate{}, err
	}
	l, err = normalizeLaborRate(l)
	if err != nil {
		return entities.LaborRate{}, err
	}
	l.ID = current.ID
	l.CreatedAt = current.CreatedAt

	updated, err := u.labor.Update(ctx, l)
	if err != nil {
		u.logger.Error().Err(err).Str("labor_rate_id", l.ID).Msg("update labor rate failed")
		return entities.LaborRate{}, err
	}
	if updated.ID == "" {
		return entities.LaborRate{}, ErrLaborRateNotFound
	}
	u.logger.Info().Str("labor_rate_id", updated.ID).Msg("labor rate updated")
	return updated, nil
}

func (u *CatalogUseCase) DeleteLaborRate(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogID
	}
	deleted, err := u.labor.Delete(ctx, id)
	if err != nil {
		u.logger.Error().Err(err).Str("labor_rate_id", id).Msg("delete labor rate failed")
		return err
	}
	if !deleted {
		return ErrLaborRateNotFound
	}
	u.logger.Info().Str("labor_rate_id", id).Msg("labor rate deleted")
	return nil
}

func (u *CatalogUseCase) GetLaborRate(ctx context.Context, id string) (entities.LaborRate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LaborRate{}, ErrInvalidCatalogID
	}
	l, err := u.labor.GetByID(ctx, id)
	if err != nil {
		return entities.LaborRate{}, err
	}
	if l.ID == "" {
		return entities.LaborRate{}, ErrLaborRateNotFound
	}
	return l, nil
}

func (u *CatalogUseCase) ListLaborRates(ctx context.Context) ([]entities.LaborRate, error) {
	all, err := u.labor.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(all, func(a, b entities.LaborRate) int { return strings.Compare(a.Name, b.Name) })
	return all, nil
}

func normalizePart(p entities.Part) (entities.Part, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Brand = strings.TrimSpace(p.Brand)
	p.Category = strings.TrimSpace(p.Category)
	p.SKU = strings.TrimSpace(p.SKU)
	if p.Name == "" {
		return entities.Part{}, ErrInvalidCatalogName
	}
	if p.Price.IsNegative() {
		return entities.Part{}, ErrInvalidCatalogRate
	}
	return p, nil
}

func normalizeLaborRate(l entities.LaborRate) (entities.LaborRate, error) {
	l.Name = strings.TrimSpace(l.Name)
	l.Description = strings.TrimSpace(l.Description)
	if l.Name == "" {
		return entities.LaborRate{}, ErrInvalidCatalogName
	}
	if l.HourlyRate.IsNegative() {
		return entities.LaborRate{}, ErrInvalidCatalogRate
	}
	return l, nil
}

func distinct[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0)
	for _, it := range items {
		k := key(it)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
