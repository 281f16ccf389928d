package entities

import "github.com/shopspring/decimal"

// ShippingType uses the gateway shipping type codes.
type ShippingType int

const (
	ShippingTypePAC          ShippingType = 1
	ShippingTypeSEDEX        ShippingType = 2
	ShippingTypeNotSpecified ShippingType = 3
)

func (t ShippingType) String() string {
	switch t {
	case ShippingTypePAC:
		return "pac"
	case ShippingTypeSEDEX:
		return "sedex"
	default:
		return "not_specified"
	}
}

// PaymentRequest is the gateway checkout request built fresh for each checkout
// and discarded after submission.
//
// Invariants:
//   - every amount is in Currency (the settlement currency), rounded to 2 places.
//   - Reference is the order id rendered as a string; reconciliation searches by it.
type PaymentRequest struct {
	Currency  string        `json:"currency"`
	Reference string        `json:"reference"`
	Items     []PaymentItem `json:"items"`
	Shipping  Shipping      `json:"shipping"`
	Sender    Sender        `json:"sender"`
}

// PaymentItem omits Weight when the order item has none.
type PaymentItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	Weight      *int64          `json:"weight,omitempty"`
}

type Shipping struct {
	Type    ShippingType    `json:"type"`
	Cost    decimal.Decimal `json:"cost"`
	Address ShippingAddress `json:"address"`
}

// ShippingAddress fields are always present; unknown values are empty strings.
type ShippingAddress struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

type Sender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Total sums item amounts times quantities plus the shipping cost.
func (r PaymentRequest) Total() decimal.Decimal {
	total := r.Shipping.Cost
	for _, it := range r.Items {
		total = total.Add(it.Amount.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
