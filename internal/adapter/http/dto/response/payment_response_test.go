package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"payment_gateway/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromPaymentRegistration(t *testing.T) {
	now := time.Now().UTC()
	r := entities.PaymentRegistration{
		ID:          "reg-1",
		OrderID:     42,
		Reference:   "42",
		Date:        now,
		Status:      entities.RegistrationStatusRegistered,
		RedirectURL: "https://www.mercadopago.com.br/checkout/v1/redirect?pref_id=1",
		Currency:    "BRL",
		Total:       decimal.RequireFromString("25.5"),
		RequestRaw:  json.RawMessage(`{"reference":"42"}`),
	}

	res := FromPaymentRegistration(r)
	if res.ID != "reg-1" || res.OrderID != 42 || res.Reference != "42" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "registered" || res.Total != "25.50" || res.Currency != "BRL" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %v", res.Date)
	}

	list := FromPaymentRegistrations(nil)
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %+v", list)
	}
}

func TestFromPaymentRequest(t *testing.T) {
	weight := int64(2)
	req := entities.PaymentRequest{
		Currency:  "BRL",
		Reference: "42",
		Items: []entities.PaymentItem{
			{ID: "1", Description: "Camiseta", Quantity: 2, Amount: decimal.RequireFromString("10"), Weight: &weight},
			{ID: "2", Description: "Caneca", Quantity: 1, Amount: decimal.RequireFromString("5.5")},
		},
		Shipping: entities.Shipping{Type: entities.ShippingTypeNotSpecified, Cost: decimal.RequireFromString("12.35")},
		Sender:   entities.Sender{Name: "Maria Silva", Email: "maria@example.com"},
	}

	res := FromPaymentRequest(req)
	if res.Total != "37.85" {
		t.Fatalf("expected total 37.85, got %s", res.Total)
	}
	if res.Items[0].Amount != "10.00" || res.Items[1].Amount != "5.50" {
		t.Fatalf("unexpected amounts: %+v", res.Items)
	}
	if res.Shipping.Type != "not_specified" || res.Shipping.Cost != "12.35" {
		t.Fatalf("unexpected shipping: %+v", res.Shipping)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Count(string(raw), `"weight"`) != 1 {
		t.Fatalf("expected weight only on the first item: %s", raw)
	}
}
