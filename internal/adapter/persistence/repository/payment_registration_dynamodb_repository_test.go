package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"payment_gateway/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func TestPaymentRegistrationDynamoRepository(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	newReg := func(id string, at time.Time) entities.PaymentRegistration {
		return entities.PaymentRegistration{
			ID:          id,
			OrderID:     42,
			Reference:   "42",
			Date:        at,
			Status:      entities.RegistrationStatusRegistered,
			RedirectURL: "https://pay.example.com/" + id,
			Currency:    "BRL",
			Total:       decimal.RequireFromString("25.5"),
			RequestRaw:  json.RawMessage(`{"reference":"42"}`),
		}
	}

	t.Run("create and get", func(t *testing.T) {
		ddb := newFakeDynamo("id")
		repo := NewPaymentRegistrationDynamoRepository(ddb, "")

		if _, err := repo.Create(ctx, newReg("r1", base)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(ddb.puts[0].TableName) != defaultRegistrationsTableName {
			t.Fatalf("unexpected table %s", aws.ToString(ddb.puts[0].TableName))
		}
		if total := ddb.puts[0].Item["total"].(*types.AttributeValueMemberS).Value; total != "25.50" {
			t.Fatalf("expected total stored as 25.50, got %s", total)
		}

		got, err := repo.GetByID(ctx, "r1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "r1" || got.OrderID != 42 || !got.Date.Equal(base) || !got.Total.Equal(decimal.RequireFromString("25.50")) {
			t.Fatalf("unexpected registration: %+v", got)
		}
		if string(got.RequestRaw) != `{"reference":"42"}` {
			t.Fatalf("unexpected raw request: %s", got.RequestRaw)
		}
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		repo := NewPaymentRegistrationDynamoRepository(newFakeDynamo("id"), "regs")
		if _, err := repo.Create(ctx, newReg("r1", base)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := repo.Create(ctx, newReg("r1", base))
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			t.Fatalf("expected conditional check failure, got %v", err)
		}
	})

	t.Run("get missing returns zero value", func(t *testing.T) {
		repo := NewPaymentRegistrationDynamoRepository(newFakeDynamo("id"), "")
		got, err := repo.GetByID(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero value, got %+v %v", got, err)
		}
	})

	t.Run("list by reference oldest first", func(t *testing.T) {
		repo := NewPaymentRegistrationDynamoRepository(newFakeDynamo("id"), "")
		_, _ = repo.Create(ctx, newReg("late", base.Add(time.Hour)))
		_, _ = repo.Create(ctx, newReg("early", base))
		other := newReg("other", base)
		other.Reference = "7"
		_, _ = repo.Create(ctx, other)

		got, err := repo.ListByReference(ctx, "42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "early" || got[1].ID != "late" {
			t.Fatalf("unexpected list: %+v", got)
		}
	})
}
