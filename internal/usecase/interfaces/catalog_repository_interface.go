package interfaces

import (
	"context"

	"business_manager/internal/domain/entities"
)

// Lookups and updates of missing records return a zero value and a nil
// error; Delete reports whether a record was removed.
type IPartRepository interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	Update(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	List(ctx context.Context) ([]entities.Part, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ILaborRateRepository interface {
	Create(ctx context.Context, l entities.LaborRate) (entities.LaborRate, error)
	Update(ctx context.Context, l entities.LaborRate) (entities.LaborRate, error)
	GetByID(ctx context.Context, id string) (entities.LaborRate, error)
	List(ctx context.Context) ([]entities.LaborRate, error)
	Delete(ctx context.Context, id string) (bool, error)
}
