package interfaces

import (
	"context"
	"payment_gateway/internal/domain/entities"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=host_interfaces.go -destination=mocks/host_interfaces_mock.go -package=mock_interfaces

// The host e-commerce platform owns orders, customers, catalog and currencies.
// Its capabilities are split so each component depends only on what it uses.
//
// Lookups return a zero value (ID == 0, or nil for optional addresses) when the
// record does not exist; errors are reserved for failures of the store itself.

// IOrderReader reads orders and the records they reference.
type IOrderReader interface {
	GetOrderByID(ctx context.Context, id int) (entities.Order, error)
	GetOrderItems(ctx context.Context, orderID int) ([]entities.OrderItem, error)
	GetProductByID(ctx context.Context, id int) (entities.Product, error)
	GetCustomerByID(ctx context.Context, id int) (entities.Customer, error)
	SearchOrders(ctx context.Context, filter entities.OrderSearchFilter) ([]entities.Order, error)
}

// IAddressResolver resolves customer addresses and their country/state records.
type IAddressResolver interface {
	GetCustomerBillingAddress(ctx context.Context, customer entities.Customer) (*entities.Address, error)
	GetCustomerShippingAddress(ctx context.Context, customer entities.Customer) (*entities.Address, error)
	GetCountryByAddress(ctx context.Context, address entities.Address) (entities.Country, error)
	GetStateProvinceByAddress(ctx context.Context, address entities.Address) (entities.StateProvince, error)
}

// ICurrencyConverter exposes the host currency table and exchange-rate service.
type ICurrencyConverter interface {
	GetCurrencyByCode(ctx context.Context, code string) (entities.Currency, error)
	GetPrimaryStoreCurrency(ctx context.Context) (entities.Currency, error)
	ConvertFromPrimaryStoreCurrency(ctx context.Context, amount decimal.Decimal, target entities.Currency) (decimal.Decimal, error)
}

// IOrderMutator is the host order-processing service.
//
// CanMarkOrderAsPaid owns the business rules (not paid, not cancelled, not refunded).
// MarkOrderAsPaid must be idempotent or serialized per order by the host: reconcile
// runs may overlap and this service takes no lock.
type IOrderMutator interface {
	CanMarkOrderAsPaid(ctx context.Context, order entities.Order) (bool, error)
	MarkOrderAsPaid(ctx context.Context, order entities.Order) error
}
