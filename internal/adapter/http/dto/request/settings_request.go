package request

import (
	"errors"
	"payment_gateway/internal/domain/entities"
	"strconv"
	"strings"
)

var (
	ErrInvalidOrderID = errors.New("invalid order id")
)

// SettingsUpdateRequest replaces the store payment setting. An empty
// account_token keeps the token already stored.
type SettingsUpdateRequest struct {
	AccountEmail             string `json:"account_email" binding:"required,email"`
	AccountToken             string `json:"account_token"`
	PaymentMethodDescription string `json:"payment_method_description"`
	PaymentMethodSystemName  string `json:"payment_method_system_name"`
	SettlementCurrencyCode   string `json:"settlement_currency_code" binding:"required,len=3"`
	PendingStatuses          []int  `json:"pending_statuses" binding:"required,min=1,dive,gt=0"`
	TieBreak                 string `json:"tie_break" binding:"omitempty,oneof=first latest"`
}

func (r SettingsUpdateRequest) ToEntity() entities.PaymentSetting {
	pending := make([]entities.PaymentStatus, 0, len(r.PendingStatuses))
	for _, st := range r.PendingStatuses {
		pending = append(pending, entities.PaymentStatus(st))
	}
	return entities.PaymentSetting{
		AccountEmail:             strings.TrimSpace(r.AccountEmail),
		AccountToken:             strings.TrimSpace(r.AccountToken),
		PaymentMethodDescription: strings.TrimSpace(r.PaymentMethodDescription),
		PaymentMethodSystemName:  strings.TrimSpace(r.PaymentMethodSystemName),
		SettlementCurrencyCode:   r.SettlementCurrencyCode,
		PendingStatuses:          pending,
		TieBreak:                 entities.TieBreak(r.TieBreak),
	}
}

// ParseOrderID reads a positive order id from a path parameter.
func ParseOrderID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, ErrInvalidOrderID
	}
	return id, nil
}
