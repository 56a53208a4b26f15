package interfaces

import (
	"context"

	"business_manager/internal/domain/entities"
)

// ICustomerRepository stores the customer registry. Lookups and updates of
// missing customers return a zero value and a nil error.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error)
	Update(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error)
	GetByID(ctx context.Context, id string) (entities.CustomerProfile, error)
	List(ctx context.Context) ([]entities.CustomerProfile, error)
	Delete(ctx context.Context, id string) (bool, error)
}
