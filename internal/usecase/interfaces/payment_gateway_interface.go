package interfaces

import (
	"context"
	"payment_gateway/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

// IPaymentGateway abstracts the external payment gateway.
//
// RegisterPayment is not idempotent: a second call for the same reference may be
// treated by the gateway as a new checkout attempt, so callers must not retry it.
// SearchTransactionsByReference is a read and may be repeated freely. It returns
// the newest attempt first.
type IPaymentGateway interface {
	RegisterPayment(ctx context.Context, credentials entities.Credentials, request entities.PaymentRequest) (redirectURL string, err error)
	SearchTransactionsByReference(ctx context.Context, credentials entities.Credentials, reference string) ([]entities.TransactionSummary, error)
}
