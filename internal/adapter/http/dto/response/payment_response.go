package response

import (
	"payment_gateway/internal/domain/entities"
	"time"
)

type PaymentRegistrationResponse struct {
	ID          string    `json:"id"`
	OrderID     int       `json:"order_id"`
	Reference   string    `json:"reference"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	RedirectURL string    `json:"redirect_url,omitempty"`
	Currency    string    `json:"currency"`
	Total       string    `json:"total"`
	Error       string    `json:"error,omitempty"`
}

func FromPaymentRegistration(r entities.PaymentRegistration) PaymentRegistrationResponse {
	return PaymentRegistrationResponse{
		ID:          r.ID,
		OrderID:     r.OrderID,
		Reference:   r.Reference,
		Date:        r.Date,
		Status:      string(r.Status),
		RedirectURL: r.RedirectURL,
		Currency:    r.Currency,
		Total:       r.Total.StringFixed(2),
		Error:       r.Error,
	}
}

func FromPaymentRegistrations(rs []entities.PaymentRegistration) []PaymentRegistrationResponse {
	out := make([]PaymentRegistrationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromPaymentRegistration(r))
	}
	return out
}

type PaymentItemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Amount      string `json:"amount"`
	Weight      *int64 `json:"weight,omitempty"`
}

type ShippingResponse struct {
	Type    string                   `json:"type"`
	Cost    string                   `json:"cost"`
	Address entities.ShippingAddress `json:"address"`
}

// PaymentRequestResponse renders amounts with two fixed decimals, as submitted.
type PaymentRequestResponse struct {
	Currency  string                `json:"currency"`
	Reference string                `json:"reference"`
	Items     []PaymentItemResponse `json:"items"`
	Shipping  ShippingResponse      `json:"shipping"`
	Sender    entities.Sender       `json:"sender"`
	Total     string                `json:"total"`
}

func FromPaymentRequest(r entities.PaymentRequest) PaymentRequestResponse {
	items := make([]PaymentItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, PaymentItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Amount:      it.Amount.StringFixed(2),
			Weight:      it.Weight,
		})
	}
	return PaymentRequestResponse{
		Currency:  r.Currency,
		Reference: r.Reference,
		Items:     items,
		Shipping: ShippingResponse{
			Type:    r.Shipping.Type.String(),
			Cost:    r.Shipping.Cost.StringFixed(2),
			Address: r.Shipping.Address,
		},
		Sender: r.Sender,
		Total:  r.Total().StringFixed(2),
	}
}
