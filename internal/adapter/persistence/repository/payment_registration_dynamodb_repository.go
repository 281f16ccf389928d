package repository

import (
	"context"
	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/infrastructure/database"
	"payment_gateway/internal/usecase/interfaces"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultRegistrationsTableName = "payment_registrations"

type paymentRegistrationItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     int    `dynamodbav:"order_id"`
	Reference   string `dynamodbav:"reference"`
	Date        string `dynamodbav:"date"`
	Status      string `dynamodbav:"status"`
	RedirectURL string `dynamodbav:"redirect_url,omitempty"`
	Currency    string `dynamodbav:"currency"`
	Total       string `dynamodbav:"total"`
	Error       string `dynamodbav:"error,omitempty"`
	RequestRaw  string `dynamodbav:"request_raw,omitempty"`
}

// PaymentRegistrationDynamoRepository persists PaymentRegistration entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reference-index (PK: reference)

type PaymentRegistrationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRegistrationRepository = (*PaymentRegistrationDynamoRepository)(nil)

func NewPaymentRegistrationDynamoRepository(ddb DynamoAPI, tableName string) *PaymentRegistrationDynamoRepository {
	return &PaymentRegistrationDynamoRepository{
		ddb:       ddb,
		tableName: defaultString(tableName, defaultRegistrationsTableName),
	}
}

func (r *PaymentRegistrationDynamoRepository) Create(ctx context.Context, p entities.PaymentRegistration) (entities.PaymentRegistration, error) {
	av, err := attributevalue.MarshalMap(toPaymentRegistrationItem(p))
	if err != nil {
		return entities.PaymentRegistration{}, err
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
		return entities.PaymentRegistration{}, err
	}
	return p, nil
}

func (r *PaymentRegistrationDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRegistration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRegistration{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRegistration{}, nil
	}

	var it paymentRegistrationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRegistration{}, err
	}
	return fromPaymentRegistrationItem(it), nil
}

// ListByReference returns the registrations of one order reference, oldest first.
func (r *PaymentRegistrationDynamoRepository) ListByReference(ctx context.Context, reference string) ([]entities.PaymentRegistration, error) {
	var (
		items   []entities.PaymentRegistration
		startAt map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(database.RegistrationReferenceIndex),
			KeyConditionExpression: aws.String("#ref = :ref"),
			ExpressionAttributeNames: map[string]string{
				"#ref": "reference",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":ref": &types.AttributeValueMemberS{Value: reference},
			},
			ExclusiveStartKey: startAt,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it paymentRegistrationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentRegistrationItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startAt = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}

func toPaymentRegistrationItem(p entities.PaymentRegistration) paymentRegistrationItem {
	return paymentRegistrationItem{
		ID:          p.ID,
		OrderID:     p.OrderID,
		Reference:   p.Reference,
		Date:        p.Date.UTC().Format(time.RFC3339Nano),
		Status:      string(p.Status),
		RedirectURL: p.RedirectURL,
		Currency:    p.Currency,
		Total:       p.Total.StringFixed(2),
		Error:       p.Error,
		RequestRaw:  string(p.RequestRaw),
	}
}

func fromPaymentRegistrationItem(it paymentRegistrationItem) entities.PaymentRegistration {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	total, _ := decimal.NewFromString(it.Total)
	p := entities.PaymentRegistration{
		ID:          it.ID,
		OrderID:     it.OrderID,
		Reference:   it.Reference,
		Date:        dt,
		Status:      entities.RegistrationStatus(it.Status),
		RedirectURL: it.RedirectURL,
		Currency:    it.Currency,
		Total:       total,
		Error:       it.Error,
	}
	if it.RequestRaw != "" {
		p.RequestRaw = []byte(it.RequestRaw)
	}
	return p
}
