package entities

import "time"

// Credentials authenticate calls to the gateway account.
type Credentials struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"-" validate:"required"`
}

// TieBreak decides which transaction wins when the gateway returns several for one reference.
type TieBreak string

const (
	TieBreakFirst  TieBreak = "first"
	TieBreakLatest TieBreak = "latest"
)

// PaymentSetting is the persisted gateway configuration of one store.
//
// Storage model (DynamoDB):
//   - PK: store_id
//
// A snapshot is taken on load and replaced only by an explicit reload/update.
type PaymentSetting struct {
	StoreID                  int             `json:"store_id" validate:"gt=0"`
	AccountEmail             string          `json:"account_email" validate:"required,email"`
	AccountToken             string          `json:"-" validate:"required"`
	PaymentMethodDescription string          `json:"payment_method_description"`
	PaymentMethodSystemName  string          `json:"payment_method_system_name" validate:"required"`
	SettlementCurrencyCode   string          `json:"settlement_currency_code" validate:"required,len=3"`
	PendingStatuses          []PaymentStatus `json:"pending_statuses" validate:"required,min=1"`
	TieBreak                 TieBreak        `json:"tie_break" validate:"omitempty,oneof=first latest"`
	UpdatedAt                time.Time       `json:"updated_at"`
}

func (s PaymentSetting) Credentials() Credentials {
	return Credentials{Email: s.AccountEmail, Token: s.AccountToken}
}
