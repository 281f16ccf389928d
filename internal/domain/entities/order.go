package entities

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus mirrors the host platform payment status ids.
type PaymentStatus int

const (
	PaymentStatusPending           PaymentStatus = 10
	PaymentStatusAuthorized        PaymentStatus = 20
	PaymentStatusPaid              PaymentStatus = 30
	PaymentStatusPartiallyRefunded PaymentStatus = 35
	PaymentStatusRefunded          PaymentStatus = 40
	PaymentStatusVoided            PaymentStatus = 50
)

// OrderStatus mirrors the host platform order status ids.
type OrderStatus int

const (
	OrderStatusPending    OrderStatus = 10
	OrderStatusProcessing OrderStatus = 20
	OrderStatusComplete   OrderStatus = 30
	OrderStatusCancelled  OrderStatus = 40
)

// Order is owned by the host platform. This service only reads it; the single
// mutation (mark as paid) goes through the host order-processing capability.
//
// Monetary representation:
//   - OrderShippingInclTax and OrderTotal are stored in the primary store currency.
type Order struct {
	ID                      int             `json:"id"`
	StoreID                 int             `json:"store_id"`
	CustomerID              int             `json:"customer_id"`
	PaymentMethodSystemName string          `json:"payment_method_system_name"`
	PaymentStatus           PaymentStatus   `json:"payment_status_id"`
	OrderStatus             OrderStatus     `json:"order_status_id"`
	OrderShippingInclTax    decimal.Decimal `json:"order_shipping_incl_tax"`
	OrderTotal              decimal.Decimal `json:"order_total"`
	PaidDateUTC             *time.Time      `json:"paid_date_utc,omitempty"`
	CreatedAt               time.Time       `json:"created_at"`
}

// OrderItem is a single order line. ItemWeight is optional: digital goods carry none.
type OrderItem struct {
	ID               int              `json:"id"`
	OrderID          int              `json:"order_id"`
	ProductID        int              `json:"product_id"`
	Quantity         int              `json:"quantity"`
	UnitPriceInclTax decimal.Decimal  `json:"unit_price_incl_tax"`
	ItemWeight       *decimal.Decimal `json:"item_weight,omitempty"`
}

type Product struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Customer struct {
	ID                int    `json:"id"`
	Email             string `json:"email"`
	BillingAddressID  *int   `json:"billing_address_id,omitempty"`
	ShippingAddressID *int   `json:"shipping_address_id,omitempty"`
}

type Address struct {
	ID              int    `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	City            string `json:"city"`
	Address1        string `json:"address1"`
	Address2        string `json:"address2"`
	ZipPostalCode   string `json:"zip_postal_code"`
	CountryID       *int   `json:"country_id,omitempty"`
	StateProvinceID *int   `json:"state_province_id,omitempty"`
}

type Country struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	TwoLetterISO   string `json:"two_letter_iso_code"`
	ThreeLetterISO string `json:"three_letter_iso_code"`
}

type StateProvince struct {
	ID           int    `json:"id"`
	CountryID    int    `json:"country_id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// Currency is a host currency table row. Rate is relative to the primary store
// currency, which carries Rate = 1.
type Currency struct {
	ID           int             `json:"id"`
	CurrencyCode string          `json:"currency_code"`
	Name         string          `json:"name"`
	Rate         decimal.Decimal `json:"rate"`
}

// OrderSearchFilter selects candidate orders for reconciliation.
type OrderSearchFilter struct {
	StoreID                 int
	PaymentMethodSystemName string
	PaymentStatuses         []PaymentStatus
}

// OrderReference is the gateway reference of an order: its id as a decimal string.
// It joins a submitted payment request with later transaction searches.
func OrderReference(orderID int) string {
	return strconv.Itoa(orderID)
}
