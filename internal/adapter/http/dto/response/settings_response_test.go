package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"payment_gateway/internal/domain/entities"
)

func TestFromReconciliationReport(t *testing.T) {
	start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	res := FromReconciliationReport(entities.ReconciliationReport{
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		Candidates: 3,
		Eligible:   2,
		MarkedPaid: 1,
		NotPaid:    1,
	})
	if res.DurationMillis != 1500 {
		t.Fatalf("expected 1500ms, got %d", res.DurationMillis)
	}
	if res.MarkedPaid != 1 || res.Candidates != 3 || res.Eligible != 2 || res.NotPaid != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if res.FailedOrderIDs == nil {
		t.Fatalf("expected empty failed list, got nil")
	}
}

func TestFromPaymentSetting(t *testing.T) {
	s := entities.PaymentSetting{
		StoreID:                  1,
		AccountEmail:             "seller@loja.com.br",
		AccountToken:             "secret-token",
		PaymentMethodDescription: "Pague com PagSeguro",
		PaymentMethodSystemName:  "Payments.PagSeguro",
		SettlementCurrencyCode:   "BRL",
		PendingStatuses:          []entities.PaymentStatus{entities.PaymentStatusPending},
	}

	res := FromPaymentSetting(s)
	if !res.AccountTokenSet {
		t.Fatalf("expected token flag set")
	}
	if res.TieBreak != "first" {
		t.Fatalf("expected default tie-break first, got %s", res.TieBreak)
	}
	if len(res.PendingStatuses) != 1 || res.PendingStatuses[0] != 10 {
		t.Fatalf("unexpected pending statuses: %+v", res.PendingStatuses)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "secret-token") {
		t.Fatalf("token leaked: %s", raw)
	}

	pm := FromPaymentMethod(s)
	if pm.SystemName != "Payments.PagSeguro" || pm.Description != "Pague com PagSeguro" || pm.Currency != "BRL" {
		t.Fatalf("unexpected payment method: %+v", pm)
	}
}
