package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"business_manager/internal/domain/entities"
	"business_manager/internal/usecase/interfaces"
)

const (
	documentsKindIndex    = "kind-index"
	documentCounterPrefix = "counter#"
)

type customerRecord struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email,omitempty"`
	Phone   string `dynamodbav:"phone,omitempty"`
	Address string `dynamodbav:"address,omitempty"`
}

type documentItemRecord struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Type        string `dynamodbav:"type"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
}

type documentRecord struct {
	ID               string               `dynamodbav:"id"`
	Number           string               `dynamodbav:"number"`
	Kind             string               `dynamodbav:"kind"`
	Customer         customerRecord       `dynamodbav:"customer"`
	Title            string               `dynamodbav:"title,omitempty"`
	Date             string               `dynamodbav:"date"`
	ValidUntil       string               `dynamodbav:"valid_until,omitempty"`
	DueDate          string               `dynamodbav:"due_date,omitempty"`
	Status           string               `dynamodbav:"status"`
	Notes            string               `dynamodbav:"notes,omitempty"`
	ProposalLetter   string               `dynamodbav:"proposal_letter,omitempty"`
	Simplified       bool                 `dynamodbav:"simplified"`
	MarkupPercent    string               `dynamodbav:"markup_percent"`
	SourceDocumentID string               `dynamodbav:"source_document_id,omitempty"`
	Items            []documentItemRecord `dynamodbav:"items"`
	TotalAmount      string               `dynamodbav:"total_amount"`
	CreatedAt        string               `dynamodbav:"created_at"`
	UpdatedAt        string               `dynamodbav:"updated_at"`
}

// DocumentDynamoRepository persists quotes, invoices and proposals.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: kind-index (PK: kind, SK: created_at)
//
// Number sequences live in the same table as counter#<kind>#<year> items.
// They carry no kind attribute, so they never show up in kind-index.
type DocumentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client, tableName string) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	av, err := attributevalue.MarshalMap(toDocumentRecord(d))
	if err != nil {
		return entities.Document{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Document{}, err
	}
	return d, nil
}

// Update replaces a stored document. A missing document yields a zero value.
func (r *DocumentDynamoRepository) Update(ctx context.Context, d entities.Document) (entities.Document, error) {
	av, err := attributevalue.MarshalMap(toDocumentRecord(d))
	if err != nil {
		return entities.Document{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Document{}, nil
		}
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	return unmarshalDocument(out.Item)
}

func (r *DocumentDynamoRepository) ListByKind(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentsKindIndex),
		KeyConditionExpression: aws.String("#kind = :kind"),
		ExpressionAttributeNames: map[string]string{
			"#kind": "kind",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: string(kind)},
		},
		ScanIndexForward: aws.Bool(false),
	})

	docs := make([]entities.Document, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			d, err := unmarshalDocument(raw)
			if err != nil {
				return nil, err
			}
			if d.ID != "" {
				docs = append(docs, d)
			}
		}
	}
	return docs, nil
}

func (r *DocumentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error) {
	now := formatTime(time.Now())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Document{}, nil
		}
		return entities.Document{}, err
	}
	return unmarshalDocument(out.Attributes)
}

// Delete reports whether a document was removed.
func (r *DocumentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// NextNumber atomically increments the kind/year counter.
func (r *DocumentDynamoRepository) NextNumber(ctx context.Context, kind entities.DocumentKind, year int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              idKey(counterID(kind, year)),
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	seq, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s returned no sequence", counterID(kind, year))
	}
	return strconv.ParseInt(seq.Value, 10, 64)
}

func counterID(kind entities.DocumentKind, year int) string {
	return fmt.Sprintf("%s%s#%d", documentCounterPrefix, kind, year)
}

// unmarshalDocument returns a zero Document for empty items and for items
// that are not documents, such as number counters.
func unmarshalDocument(av map[string]types.AttributeValue) (entities.Document, error) {
	if len(av) == 0 {
		return entities.Document{}, nil
	}
	var rec documentRecord
	if err := attributevalue.UnmarshalMap(av, &rec); err != nil {
		return entities.Document{}, err
	}
	if rec.Kind == "" {
		return entities.Document{}, nil
	}
	return fromDocumentRecord(rec), nil
}

func toDocumentRecord(d entities.Document) documentRecord {
	items := make([]documentItemRecord, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, documentItemRecord{
			ID:          it.ID,
			Description: it.Description,
			Type:        it.Type,
			Quantity:    decimalToString(it.Quantity),
			UnitPrice:   decimalToString(it.UnitPrice),
			Total:       decimalToString(it.Total),
		})
	}
	return documentRecord{
		ID:     d.ID,
		Number: d.Number,
		Kind:   string(d.Kind),
		Customer: customerRecord{
			ID:      d.Customer.ID,
			Name:    d.Customer.Name,
			Email:   d.Customer.Email,
			Phone:   d.Customer.Phone,
			Address: d.Customer.Address,
		},
		Title:            d.Title,
		Date:             formatTime(d.Date),
		ValidUntil:       formatTime(d.ValidUntil),
		DueDate:          formatTime(d.DueDate),
		Status:           string(d.Status),
		Notes:            d.Notes,
		ProposalLetter:   d.ProposalLetter,
		Simplified:       d.Simplified,
		MarkupPercent:    decimalToString(d.MarkupPercent),
		SourceDocumentID: d.SourceDocumentID,
		Items:            items,
		TotalAmount:      decimalToString(d.TotalAmount),
		CreatedAt:        formatTime(d.CreatedAt),
		UpdatedAt:        formatTime(d.UpdatedAt),
	}
}

func fromDocumentRecord(rec documentRecord) entities.Document {
	items := make([]entities.DocumentItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, entities.DocumentItem{
			ID:          it.ID,
			Description: it.Description,
			Type:        it.Type,
			Quantity:    parseDecimal(it.Quantity),
			UnitPrice:   parseDecimal(it.UnitPrice),
			Total:       parseDecimal(it.Total),
		})
	}
	return entities.Document{
		ID:     rec.ID,
		Number: rec.Number,
		Kind:   entities.DocumentKind(rec.Kind),
		Customer: entities.Customer{
			ID:      rec.Customer.ID,
			Name:    rec.Customer.Name,
			Email:   rec.Customer.Email,
			Phone:   rec.Customer.Phone,
			Address: rec.Customer.Address,
		},
		Title:            rec.Title,
		Date:             parseTime(rec.Date),
		ValidUntil:       parseTime(rec.ValidUntil),
		DueDate:          parseTime(rec.DueDate),
		Status:           entities.DocumentStatus(rec.Status),
		Notes:            rec.Notes,
		ProposalLetter:   rec.ProposalLetter,
		Simplified:       rec.Simplified,
		MarkupPercent:    parseDecimal(rec.MarkupPercent),
		SourceDocumentID: rec.SourceDocumentID,
		Items:            items,
		TotalAmount:      parseDecimal(rec.TotalAmount),
		CreatedAt:        parseTime(rec.CreatedAt),
		UpdatedAt:        parseTime(rec.UpdatedAt),
	}
}
