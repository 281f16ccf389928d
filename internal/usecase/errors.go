package usecase

import (
	"errors"
	"fmt"
)

// Error categories. Specific errors wrap one of these so callers can branch on
// the category with errors.Is.
var (
	// ErrConfiguration is fatal and never retried.
	ErrConfiguration = errors.New("configuration error")
	// ErrGateway covers failed or timed-out gateway calls.
	ErrGateway = errors.New("gateway error")
	// ErrDataIntegrity means a record referenced by the order is missing.
	ErrDataIntegrity = errors.New("data integrity error")
)

var (
	ErrSettlementCurrencyNotFound = fmt.Errorf("%w: settlement currency not registered", ErrConfiguration)
	ErrPrimaryCurrencyNotFound    = fmt.Errorf("%w: primary store currency not registered", ErrConfiguration)
	ErrInvalidCredentials         = fmt.Errorf("%w: invalid gateway credentials", ErrConfiguration)
	ErrInvalidPaymentSetting      = fmt.Errorf("%w: invalid payment setting", ErrConfiguration)

	ErrProductNotFound        = fmt.Errorf("%w: product not found", ErrDataIntegrity)
	ErrCustomerNotFound       = fmt.Errorf("%w: customer not found", ErrDataIntegrity)
	ErrBillingAddressNotFound = fmt.Errorf("%w: billing address not found", ErrDataIntegrity)

	ErrInvalidOrderID = errors.New("invalid order id")
	ErrOrderNotFound  = errors.New("order not found")
)

func gatewayError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrGateway, op, err)
}
