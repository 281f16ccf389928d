package payments

import (
	"context"
	"net/http"
	"testing"
	"time"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase"
	mock_interfaces "payment_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReconcile_RetryAfterRejectionIsMarkedPaid(t *testing.T) {
	for _, tieBreak := range []entities.TieBreak{entities.TieBreakFirst, entities.TieBreakLatest} {
		t.Run(string(tieBreak), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Oldest attempt first, as a server ignoring the sort criteria would answer.
			g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"paging":{"total":2,"limit":50,"offset":0},"results":[
					{"id":1,"status":"rejected","external_reference":"42","transaction_amount":25,
					 "date_created":"2024-05-01T10:00:00.000-04:00","date_last_updated":"2024-05-01T10:00:05.000-04:00"},
					{"id":2,"status":"approved","external_reference":"42","transaction_amount":25,
					 "date_created":"2024-05-01T10:10:00.000-04:00","date_last_updated":"2024-05-01T10:10:05.000-04:00"}]}`))
			})

			orders := mock_interfaces.NewMockIOrderReader(ctrl)
			mutator := mock_interfaces.NewMockIOrderMutator(ctrl)
			setting := entities.PaymentSetting{
				StoreID:                 1,
				AccountEmail:            testCredentials.Email,
				AccountToken:            testCredentials.Token,
				PaymentMethodSystemName: "Payments.PagSeguro",
				SettlementCurrencyCode:  "BRL",
				PendingStatuses:         []entities.PaymentStatus{entities.PaymentStatusPending},
				TieBreak:                tieBreak,
			}
			r := usecase.NewPaymentReconciler(orders, mutator, g, nil, usecase.StaticSettings(setting), time.Second, 1)

			order := entities.Order{ID: 42}
			orders.EXPECT().SearchOrders(gomock.Any(), gomock.Any()).Return([]entities.Order{order}, nil)
			mutator.EXPECT().CanMarkOrderAsPaid(gomock.Any(), order).Return(true, nil)
			mutator.EXPECT().MarkOrderAsPaid(gomock.Any(), order).Return(nil).Times(1)

			report, err := r.Reconcile(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if report.MarkedPaid != 1 || report.NotPaid != 0 {
				t.Fatalf("expected order marked paid, got %+v", report)
			}
		})
	}
}
