package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"business_manager/internal/domain/entities"
	"business_manager/internal/usecase/interfaces"
)

type customerProfileRecord struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`
}

// CustomerDynamoRepository persists the customer registry. Table PK: id (string).
type CustomerDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toCustomerProfileRecord(c)); err != nil {
		return entities.CustomerProfile{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toCustomerProfileRecord(c))
	if err != nil || !found {
		return entities.CustomerProfile{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.CustomerProfile, error) {
	var rec customerProfileRecord
	found, err := getByID(ctx, r.ddb, r.tableName, id, &rec)
	if err != nil || !found {
		return entities.CustomerProfile{}, err
	}
	return fromCustomerProfileRecord(rec), nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.CustomerProfile, error) {
	recs, err := scanAll[customerProfileRecord](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CustomerProfile, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromCustomerProfileRecord(rec))
	}
	return out, nil
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toCustomerProfileRecord(c entities.CustomerProfile) customerProfileRecord {
	return customerProfileRecord{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCustomerProfileRecord(rec customerProfileRecord) entities.CustomerProfile {
	return entities.CustomerProfile{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Address:   rec.Address,
		CreatedAt: parseTime(rec.CreatedAt),
		UpdatedAt: parseTime(rec.UpdatedAt),
	}
}
