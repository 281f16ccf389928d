package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus uses the gateway transaction status codes.
type TransactionStatus int

const (
	TransactionStatusUnknown        TransactionStatus = 0
	TransactionStatusWaitingPayment TransactionStatus = 1
	TransactionStatusInAnalysis     TransactionStatus = 2
	TransactionStatusPaid           TransactionStatus = 3
	TransactionStatusAvailable      TransactionStatus = 4
	TransactionStatusInDispute      TransactionStatus = 5
	TransactionStatusReturned       TransactionStatus = 6
	TransactionStatusCancelled      TransactionStatus = 7
)

var transactionStatusNames = map[TransactionStatus]string{
	TransactionStatusUnknown:        "unknown",
	TransactionStatusWaitingPayment: "waiting_payment",
	TransactionStatusInAnalysis:     "in_analysis",
	TransactionStatusPaid:           "paid",
	TransactionStatusAvailable:      "available",
	TransactionStatusInDispute:      "in_dispute",
	TransactionStatusReturned:       "returned",
	TransactionStatusCancelled:      "cancelled",
}

func (s TransactionStatus) String() string {
	if name, ok := transactionStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsSettled reports whether the gateway considers the money received.
func (s TransactionStatus) IsSettled() bool {
	return s == TransactionStatusPaid || s == TransactionStatusAvailable
}

// TransactionSummary is what the gateway reports for one transaction matching a reference.
type TransactionSummary struct {
	Code          string            `json:"code"`
	Reference     string            `json:"reference"`
	Status        TransactionStatus `json:"status"`
	GrossAmount   decimal.Decimal   `json:"gross_amount"`
	Date          time.Time         `json:"date"`
	LastEventDate time.Time         `json:"last_event_date"`
}
