package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// RegistrationStatus is the outcome of one register call at the gateway.
type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusFailed     RegistrationStatus = "failed"
)

// PaymentRegistration records one checkout submission for audit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reference-index): reference
//
// RequestRaw keeps the submitted request body (JSON) for traceability.
type PaymentRegistration struct {
	ID          string             `json:"id"`
	OrderID     int                `json:"order_id"`
	Reference   string             `json:"reference"`
	Date        time.Time          `json:"date"`
	Status      RegistrationStatus `json:"status"`
	RedirectURL string             `json:"redirect_url,omitempty"`
	Currency    string             `json:"currency"`
	Total       decimal.Decimal    `json:"total"`
	Error       string             `json:"error,omitempty"`

	RequestRaw json.RawMessage `json:"request_raw,omitempty"`
}
