package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"business_manager/internal/domain/entities"
	"business_manager/internal/usecase/interfaces"
)

type partRecord struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	SKU       string `dynamodbav:"sku,omitempty"`
	Category  string `dynamodbav:"category,omitempty"`
	Brand     string `dynamodbav:"brand,omitempty"`
	Price     string `dynamodbav:"price"`
	CreatedAt string `dynamodbav:"created_at"`
}

type laborRateRecord struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	HourlyRate  string `dynamodbav:"hourly_rate"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// PartDynamoRepository persists catalog parts. Table PK: id (string).
type PartDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb *dynamodb.Client, tableName string) *PartDynamoRepository {
	return &PartDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PartDynamoRepository) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPartRecord(p)); err != nil {
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	var rec partRecord
	found, err := getByID(ctx, r.ddb, r.tableName, id, &rec)
	if err != nil || !found {
		return entities.Part{}, err
	}
	return fromPartRecord(rec), nil
}

// Update replaces a stored part. A missing part yields a zero value.
func (r *PartDynamoRepository) Update(ctx context.Context, p entities.Part) (entities.Part, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toPartRecord(p))
	if err != nil || !found {
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func (r *PartDynamoRepository) List(ctx context.Context) ([]entities.Part, error) {
	recs, err := scanAll[partRecord](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	parts := make([]entities.Part, 0, len(recs))
	for _, rec := range recs {
		parts = append(parts, fromPartRecord(rec))
	}
	return parts, nil
}

// LaborRateDynamoRepository persists labor rates. Table PK: id (string).
type LaborRateDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ILaborRateRepository = (*LaborRateDynamoRepository)(nil)

func NewLaborRateDynamoRepository(ddb *dynamodb.Client, tableName string) *LaborRateDynamoRepository {
	return &LaborRateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LaborRateDynamoRepository) Create(ctx context.Context, l entities.LaborRate) (entities.LaborRate, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toLaborRateRecord(l)); err != nil {
		return entities.LaborRate{}, err
	}
	return l, nil
}

func (r *LaborRateDynamoRepository) GetByID(ctx context.Context, id string) (entities.LaborRate, error) {
	var rec laborRateRecord
	found, err := getByID(ctx, r.ddb, r.tableName, id, &rec)
	if err != nil || !found {
		return entities.LaborRate{}, err
	}
	return fromLaborRateRecord(rec), nil
}

// Update replaces a stored labor rate. A missing rate yields a zero value.
func (r *LaborRateDynamoRepository) Update(ctx context.Context, l entities.LaborRate) (entities.LaborRate, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toLaborRateRecord(l))
	if err != nil || !found {
		return entities.LaborRate{}, err
	}
	return l, nil
}

func (r *LaborRateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func (r *LaborRateDynamoRepository) List(ctx context.Context) ([]entities.LaborRate, error) {
	recs, err := scanAll[laborRateRecord](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	rates := make([]entities.LaborRate, 0, len(recs))
	for _, rec := range recs {
		rates = append(rates, fromLaborRateRecord(rec))
	}
	return rates, nil
}

func putNew(ctx context.Context, ddb dynamoAPI, table string, rec any) error {
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// putExisting overwrites rec only when its id is already stored.
func putExisting(ctx context.Context, ddb dynamoAPI, table string, rec any) (bool, error) {
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return false, err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func deleteByID(ctx context.Context, ddb dynamoAPI, table, id string) (bool, error) {
	out, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(table),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func getByID(ctx context.Context, ddb dynamoAPI, table, id string, out any) (bool, error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Item, out)
}

func scanAll[T any](ctx context.Context, ddb dynamoAPI, table string) ([]T, error) {
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})
	out := make([]T, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var recs []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

func toPartRecord(p entities.Part) partRecord {
	return partRecord{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Category:  p.Category,
		Brand:     p.Brand,
		Price:     decimalToString(p.Price),
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func fromPartRecord(rec partRecord) entities.Part {
	return entities.Part{
		ID:        rec.ID,
		Name:      rec.Name,
		SKU:       rec.SKU,
		Category:  rec.Category,
		Brand:     rec.Brand,
		Price:     parseDecimal(rec.Price),
		CreatedAt: parseTime(rec.CreatedAt),
	}
}

func toLaborRateRecord(l entities.LaborRate) laborRateRecord {
	return laborRateRecord{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		HourlyRate:  decimalToString(l.HourlyRate),
		CreatedAt:   formatTime(l.CreatedAt),
	}
}

func fromLaborRateRecord(rec laborRateRecord) entities.LaborRate {
	return entities.LaborRate{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		HourlyRate:  parseDecimal(rec.HourlyRate),
		CreatedAt:   parseTime(rec.CreatedAt),
	}
}

