package repository

import (
	"context"
	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSettingsTableName = "payment_settings"

type paymentSettingItem struct {
	StoreID                  int    `dynamodbav:"store_id"`
	AccountEmail             string `dynamodbav:"account_email"`
	AccountToken             string `dynamodbav:"account_token"`
	PaymentMethodDescription string `dynamodbav:"payment_method_description"`
	PaymentMethodSystemName  string `dynamodbav:"payment_method_system_name"`
	SettlementCurrencyCode   string `dynamodbav:"settlement_currency_code"`
	PendingStatuses          []int  `dynamodbav:"pending_statuses"`
	TieBreak                 string `dynamodbav:"tie_break,omitempty"`
	UpdatedAt                string `dynamodbav:"updated_at"`
}

// PaymentSettingDynamoRepository persists the payment setting of each store.
//
// Table requirements:
//   - PK: store_id (number)
//
// One item per store; Put overwrites it.

type PaymentSettingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentSettingRepository = (*PaymentSettingDynamoRepository)(nil)

func NewPaymentSettingDynamoRepository(ddb DynamoAPI, tableName string) *PaymentSettingDynamoRepository {
	return &PaymentSettingDynamoRepository{
		ddb:       ddb,
		tableName: defaultString(tableName, defaultSettingsTableName),
	}
}

func (r *PaymentSettingDynamoRepository) Get(ctx context.Context, storeID int) (entities.PaymentSetting, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"store_id": &types.AttributeValueMemberN{Value: strconv.Itoa(storeID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentSetting{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentSetting{}, false, nil
	}

	var it paymentSettingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentSetting{}, false, err
	}
	return fromPaymentSettingItem(it), true, nil
}

func (r *PaymentSettingDynamoRepository) Put(ctx context.Context, s entities.PaymentSetting) (entities.PaymentSetting, error) {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(toPaymentSettingItem(s))
	if err != nil {
		return entities.PaymentSetting{}, err
	}

	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.PaymentSetting{}, err
	}
	return s, nil
}

func toPaymentSettingItem(s entities.PaymentSetting) paymentSettingItem {
	statuses := make([]int, 0, len(s.PendingStatuses))
	for _, st := range s.PendingStatuses {
		statuses = append(statuses, int(st))
	}
	return paymentSettingItem{
		StoreID:                  s.StoreID,
		AccountEmail:             s.AccountEmail,
		AccountToken:             s.AccountToken,
		PaymentMethodDescription: s.PaymentMethodDescription,
		PaymentMethodSystemName:  s.PaymentMethodSystemName,
		SettlementCurrencyCode:   s.SettlementCurrencyCode,
		PendingStatuses:          statuses,
		TieBreak:                 string(s.TieBreak),
		UpdatedAt:                s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentSettingItem(it paymentSettingItem) entities.PaymentSetting {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	statuses := make([]entities.PaymentStatus, 0, len(it.PendingStatuses))
	for _, st := range it.PendingStatuses {
		statuses = append(statuses, entities.PaymentStatus(st))
	}
	return entities.PaymentSetting{
		StoreID:                  it.StoreID,
		AccountEmail:             it.AccountEmail,
		AccountToken:             it.AccountToken,
		PaymentMethodDescription: it.PaymentMethodDescription,
		PaymentMethodSystemName:  it.PaymentMethodSystemName,
		SettlementCurrencyCode:   it.SettlementCurrencyCode,
		PendingStatuses:          statuses,
		TieBreak:                 entities.TieBreak(it.TieBreak),
		UpdatedAt:                updatedAt,
	}
}
