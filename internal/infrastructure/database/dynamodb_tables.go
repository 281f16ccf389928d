package database

import (
	"context"
	"errors"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// RegistrationReferenceIndex is the GSI used to list registrations of an order.
const RegistrationReferenceIndex = "reference-index"

type TableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates the registration and settings tables when missing.
// Meant for local environments and tests; production tables are provisioned outside.
func EnsureTables(ctx context.Context, ddb TableCreator, registrationsTable, settingsTable string) error {
	tables := []*dynamodb.CreateTableInput{
		{
			TableName:   aws.String(registrationsTable),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("reference"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
				IndexName: aws.String(RegistrationReferenceIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("reference"), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			}},
		},
		{
			TableName:   aws.String(settingsTable),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("store_id"), AttributeType: types.ScalarAttributeTypeN},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("store_id"), KeyType: types.KeyTypeHash},
			},
		},
	}

	for _, in := range tables {
		_, err := ddb.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			log.Printf("[database][dynamodb] table created name=%s", aws.ToString(in.TableName))
		case errors.As(err, &inUse):
			log.Printf("[database][dynamodb] table exists name=%s", aws.ToString(in.TableName))
		default:
			log.Printf("[database][dynamodb] create table failed name=%s err=%v", aws.ToString(in.TableName), err)
			return err
		}
	}
	return nil
}
