package interfaces

import (
	"context"
	"payment_gateway/internal/domain/entities"
)

//go:generate mockgen -source=payment_registration_repository_interface.go -destination=mocks/payment_registration_repository_interface_mock.go -package=mock_interfaces

// IPaymentRegistrationRepository abstracts DynamoDB persistence for PaymentRegistration.

type IPaymentRegistrationRepository interface {
	Create(ctx context.Context, r entities.PaymentRegistration) (entities.PaymentRegistration, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRegistration, error)
	ListByReference(ctx context.Context, reference string) ([]entities.PaymentRegistration, error)
}
