package interfaces

import (
	"context"
	"payment_gateway/internal/domain/entities"
)

//go:generate mockgen -source=payment_setting_repository_interface.go -destination=mocks/payment_setting_repository_interface_mock.go -package=mock_interfaces

// IPaymentSettingRepository abstracts DynamoDB persistence for PaymentSetting.
//
// Get reports found=false when the store has never been configured.

type IPaymentSettingRepository interface {
	Get(ctx context.Context, storeID int) (entities.PaymentSetting, bool, error)
	Put(ctx context.Context, s entities.PaymentSetting) (entities.PaymentSetting, error)
}
