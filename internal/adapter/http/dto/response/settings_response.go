package response

import (
	"payment_gateway/internal/domain/entities"
	"time"
)

// SettingsResponse never carries the account token, only whether one is set.
type SettingsResponse struct {
	StoreID                  int       `json:"store_id"`
	AccountEmail             string    `json:"account_email"`
	AccountTokenSet          bool      `json:"account_token_set"`
	PaymentMethodDescription string    `json:"payment_method_description"`
	PaymentMethodSystemName  string    `json:"payment_method_system_name"`
	SettlementCurrencyCode   string    `json:"settlement_currency_code"`
	PendingStatuses          []int     `json:"pending_statuses"`
	TieBreak                 string    `json:"tie_break"`
	UpdatedAt                time.Time `json:"updated_at"`
}

func FromPaymentSetting(s entities.PaymentSetting) SettingsResponse {
	pending := make([]int, 0, len(s.PendingStatuses))
	for _, st := range s.PendingStatuses {
		pending = append(pending, int(st))
	}
	tieBreak := s.TieBreak
	if tieBreak == "" {
		tieBreak = entities.TieBreakFirst
	}
	return SettingsResponse{
		StoreID:                  s.StoreID,
		AccountEmail:             s.AccountEmail,
		AccountTokenSet:          s.AccountToken != "",
		PaymentMethodDescription: s.PaymentMethodDescription,
		PaymentMethodSystemName:  s.PaymentMethodSystemName,
		SettlementCurrencyCode:   s.SettlementCurrencyCode,
		PendingStatuses:          pending,
		TieBreak:                 string(tieBreak),
		UpdatedAt:                s.UpdatedAt,
	}
}

// PaymentMethodResponse is what the checkout page shows for this payment method.
type PaymentMethodResponse struct {
	SystemName  string `json:"system_name"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
}

func FromPaymentMethod(s entities.PaymentSetting) PaymentMethodResponse {
	return PaymentMethodResponse{
		SystemName:  s.PaymentMethodSystemName,
		Description: s.PaymentMethodDescription,
		Currency:    s.SettlementCurrencyCode,
	}
}
