package repository

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a single-table, id-keyed stand-in for DynamoDB that
// understands the expressions the repositories send.
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
}

var _ dynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(key map[string]types.AttributeValue) string {
	return key["id"].(*types.AttributeValueMemberS).Value
}

func (f *fakeDynamo) checkCondition(cond *string, exists bool) error {
	switch c := aws.ToString(cond); {
	case strings.HasPrefix(c, "attribute_not_exists") && exists,
		strings.HasPrefix(c, "attribute_exists") && !exists:
		return &types.ConditionalCheckFailedException{Message: aws.String("conditional check failed")}
	}
	return nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := keyOf(in.Item)
	_, exists := f.items[id]
	if err := f.checkCondition(in.ConditionExpression, exists); err != nil {
		return nil, err
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := keyOf(in.Key)
	item, exists := f.items[id]
	if err := f.checkCondition(in.ConditionExpression, exists); err != nil {
		return nil, err
	}
	if !exists {
		item = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
	}

	expr := aws.ToString(in.UpdateExpression)
	switch {
	case strings.HasPrefix(expr, "ADD "):
		fields := strings.Fields(expr)
		attr := in.ExpressionAttributeNames[fields[1]]
		delta, _ := strconv.ParseInt(in.ExpressionAttributeValues[fields[2]].(*types.AttributeValueMemberN).Value, 10, 64)
		var cur int64
		if n, ok := item[attr].(*types.AttributeValueMemberN); ok {
			cur, _ = strconv.ParseInt(n.Value, 10, 64)
		}
		item[attr] = &types.AttributeValueMemberN{Value: strconv.FormatInt(cur+delta, 10)}
		f.items[id] = item
		return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{attr: item[attr]}}, nil
	case strings.HasPrefix(expr, "SET "):
		for _, assign := range strings.Split(strings.TrimPrefix(expr, "SET "), ",") {
			parts := strings.Split(assign, "=")
			name := in.ExpressionAttributeNames[strings.TrimSpace(parts[0])]
			item[name] = in.ExpressionAttributeValues[strings.TrimSpace(parts[1])]
		}
		f.items[id] = item
		return &dynamodb.UpdateItemOutput{Attributes: item}, nil
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := keyOf(in.Key)
	old := f.items[id]
	delete(f.items, id)
	return &dynamodb.DeleteItemOutput{Attributes: old}, nil
}

// Query treats "<attr>-index" as an equality lookup on attr.
func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	attr := strings.TrimSuffix(aws.ToString(in.IndexName), "-index")
	var want string
	for _, v := range in.ExpressionAttributeValues {
		want = v.(*types.AttributeValueMemberS).Value
	}
	out := make([]map[string]types.AttributeValue, 0)
	for _, id := range f.sortedIDs() {
		item := f.items[id]
		if s, ok := item[attr].(*types.AttributeValueMemberS); ok && s.Value == want {
			out = append(out, item)
		}
	}
	return &dynamodb.QueryOutput{Items: out, Count: int32(len(out))}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]types.AttributeValue, 0, len(f.items))
	for _, id := range f.sortedIDs() {
		out = append(out, f.items[id])
	}
	return &dynamodb.ScanOutput{Items: out, Count: int32(len(out))}, nil
}

func (f *fakeDynamo) sortedIDs() []string {
	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
