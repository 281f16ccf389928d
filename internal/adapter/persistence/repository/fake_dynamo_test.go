package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items of a single-key table in memory. Query supports an
// equality condition on one string attribute bound to the first expression value.
type fakeDynamo struct {
	mu      sync.Mutex
	key     string
	items   map[string]map[string]types.AttributeValue
	failPut error
	puts    []*dynamodb.PutItemInput
}

func newFakeDynamo(key string) *fakeDynamo {
	return &fakeDynamo{key: key, items: map[string]map[string]types.AttributeValue{}}
}

func keyString(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return "S:" + v.Value
	case *types.AttributeValueMemberN:
		return "N:" + v.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, in)
	if f.failPut != nil {
		return nil, f.failPut
	}
	k := keyString(in.Item[f.key])
	if aws.ToString(in.ConditionExpression) != "" {
		if _, exists := f.items[k]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[keyString(in.Key[f.key])]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var attr string
	for _, v := range in.ExpressionAttributeNames {
		attr = v
	}
	var want types.AttributeValue
	for _, v := range in.ExpressionAttributeValues {
		want = v
	}
	if attr == "" || want == nil {
		return nil, errors.New("unsupported query")
	}

	out := &dynamodb.QueryOutput{}
	for _, item := range f.items {
		if keyString(item[attr]) == keyString(want) {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}
