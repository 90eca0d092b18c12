// Package mocks provides in-memory fakes for the AWS clients the services
// depend on, so unit tests run without any AWS connectivity.
package mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// FakeDynamoDB is an in-memory DynamoDB implementing the client subset the
// services use. Items are keyed by the "id" partition attribute. It supports
// the two condition expressions the services issue (attribute_not_exists and
// version equality) and the ADD update used for counters.
type FakeDynamoDB struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue

	// FailNextPut, when set, makes the next PutItem return this error.
	FailNextPut error
}

func NewFakeDynamoDB() *FakeDynamoDB {
	return &FakeDynamoDB{tables: make(map[string]map[string]map[string]types.AttributeValue)}
}

func (f *FakeDynamoDB) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = make(map[string]map[string]types.AttributeValue)
		f.tables[name] = t
	}
	return t
}

func itemID(item map[string]types.AttributeValue) (string, error) {
	attr, ok := item["id"]
	if !ok {
		return "", fmt.Errorf("item has no id attribute")
	}
	s, ok := attr.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("id attribute is not a string")
	}
	return s.Value, nil
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func (f *FakeDynamoDB) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id, err := itemID(params.Key)
	if err != nil {
		return nil, err
	}
	item, ok := f.table(*params.TableName)[id]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *FakeDynamoDB) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailNextPut != nil {
		err := f.FailNextPut
		f.FailNextPut = nil
		return nil, err
	}

	id, err := itemID(params.Item)
	if err != nil {
		return nil, err
	}
	table := f.table(*params.TableName)
	existing, exists := table[id]

	if params.ConditionExpression != nil {
		cond := *params.ConditionExpression
		switch {
		case strings.Contains(cond, "attribute_not_exists"):
			if exists {
				return nil, &types.ConditionalCheckFailedException{Message: strPtr("item already exists")}
			}
		case strings.Contains(cond, "version = :v"):
			want, err := numValue(params.ExpressionAttributeValues[":v"])
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, &types.ConditionalCheckFailedException{Message: strPtr("item missing")}
			}
			have, err := numValue(existing["version"])
			if err != nil || have != want {
				return nil, &types.ConditionalCheckFailedException{Message: strPtr("version mismatch")}
			}
		default:
			return nil, fmt.Errorf("unsupported condition expression: %s", cond)
		}
	}

	table[id] = copyItem(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *FakeDynamoDB) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id, err := itemID(params.Key)
	if err != nil {
		return nil, err
	}
	delete(f.table(*params.TableName), id)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *FakeDynamoDB) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if params.UpdateExpression == nil || !strings.HasPrefix(*params.UpdateExpression, "ADD") {
		return nil, fmt.Errorf("unsupported update expression")
	}

	id, err := itemID(params.Key)
	if err != nil {
		return nil, err
	}
	attrName, ok := params.ExpressionAttributeNames["#v"]
	if !ok {
		return nil, fmt.Errorf("ADD update missing #v name")
	}
	delta, err := numValue(params.ExpressionAttributeValues[":one"])
	if err != nil {
		return nil, err
	}

	table := f.table(*params.TableName)
	item, exists := table[id]
	if !exists {
		item = copyItem(params.Key)
		table[id] = item
	}

	current := int64(0)
	if attr, ok := item[attrName]; ok {
		current, err = numValue(attr)
		if err != nil {
			return nil, err
		}
	}
	next := current + delta
	item[attrName] = &types.AttributeValueMemberN{Value: strconv.FormatInt(next, 10)}

	return &dynamodb.UpdateItemOutput{
		Attributes: map[string]types.AttributeValue{
			attrName: &types.AttributeValueMemberN{Value: strconv.FormatInt(next, 10)},
		},
	}, nil
}

func (f *FakeDynamoDB) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var items []map[string]types.AttributeValue
	for _, item := range f.table(*params.TableName) {
		items = append(items, copyItem(item))
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

func numValue(attr types.AttributeValue) (int64, error) {
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("attribute is not a number")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func strPtr(s string) *string { return &s }
