package usecase

import "payment_gateway/internal/domain/entities"

// SettingsSource hands out the payment setting snapshot in effect.
type SettingsSource interface {
	Current() entities.PaymentSetting
}

// StaticSettings is a fixed snapshot, used by one-shot commands and tests.
type StaticSettings entities.PaymentSetting

func (s StaticSettings) Current() entities.PaymentSetting {
	return entities.PaymentSetting(s)
}
