package usecase

import (
	"context"
	"fmt"
	"log"
	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"
	"strconv"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var builderTracer = otel.Tracer("usecase/payment-request-builder")

// IPaymentRequestBuilder assembles a gateway payment request from a host order.
//
// Build is a pure function of the order, the current settings snapshot and the
// host exchange rates; it never mutates the order.
//
// Amounts are rounded with decimal.Round(2): half away from zero (2.345 -> 2.35).
type IPaymentRequestBuilder interface {
	Build(ctx context.Context, order entities.Order) (entities.PaymentRequest, error)
	Convert(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
}

type PaymentRequestBuilder struct {
	orders     interfaces.IOrderReader
	addresses  interfaces.IAddressResolver
	currencies interfaces.ICurrencyConverter
	settings   SettingsSource
}

var _ IPaymentRequestBuilder = (*PaymentRequestBuilder)(nil)

func NewPaymentRequestBuilder(orders interfaces.IOrderReader, addresses interfaces.IAddressResolver, currencies interfaces.ICurrencyConverter, settings SettingsSource) *PaymentRequestBuilder {
	return &PaymentRequestBuilder{orders: orders, addresses: addresses, currencies: currencies, settings: settings}
}

func (b *PaymentRequestBuilder) Build(ctx context.Context, order entities.Order) (entities.PaymentRequest, error) {
	ctx, span := builderTracer.Start(ctx, "payment_request.build")
	defer span.End()
	span.SetAttributes(attribute.Int("order.id", order.ID))

	setting := b.settings.Current()
	log.Printf("[payment][builder] build start order_id=%d currency=%s", order.ID, setting.SettlementCurrencyCode)

	conv, err := b.conversion(ctx, setting.SettlementCurrencyCode)
	if err != nil {
		span.RecordError(err)
		return entities.PaymentRequest{}, err
	}

	customer, err := b.orders.GetCustomerByID(ctx, order.CustomerID)
	if err != nil {
		return entities.PaymentRequest{}, fmt.Errorf("load customer %d: %w", order.CustomerID, err)
	}
	if customer.ID == 0 {
		log.Printf("[payment][builder] customer not found order_id=%d customer_id=%d", order.ID, order.CustomerID)
		return entities.PaymentRequest{}, fmt.Errorf("%w: customer_id=%d", ErrCustomerNotFound, order.CustomerID)
	}

	req := entities.PaymentRequest{
		Currency:  setting.SettlementCurrencyCode,
		Reference: entities.OrderReference(order.ID),
	}

	if req.Items, err = b.items(ctx, order, conv); err != nil {
		span.RecordError(err)
		return entities.PaymentRequest{}, err
	}
	if req.Shipping, err = b.shipping(ctx, order, customer, conv); err != nil {
		span.RecordError(err)
		return entities.PaymentRequest{}, err
	}
	if req.Sender, err = b.sender(ctx, customer); err != nil {
		span.RecordError(err)
		return entities.PaymentRequest{}, err
	}

	log.Printf("[payment][builder] build success order_id=%d reference=%s items=%d shipping_cost=%s total=%s",
		order.ID, req.Reference, len(req.Items), req.Shipping.Cost.StringFixed(2), req.Total().StringFixed(2))
	return req, nil
}

// Convert applies the currency conversion policy to a single amount.
func (b *PaymentRequestBuilder) Convert(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	conv, err := b.conversion(ctx, b.settings.Current().SettlementCurrencyCode)
	if err != nil {
		return decimal.Zero, err
	}
	return conv.apply(ctx, amount)
}

func (b *PaymentRequestBuilder) items(ctx context.Context, order entities.Order, conv *conversion) ([]entities.PaymentItem, error) {
	orderItems, err := b.orders.GetOrderItems(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("load order items %d: %w", order.ID, err)
	}

	items := make([]entities.PaymentItem, 0, len(orderItems))
	for _, it := range orderItems {
		product, err := b.orders.GetProductByID(ctx, it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("load product %d: %w", it.ProductID, err)
		}
		if product.ID == 0 {
			log.Printf("[payment][builder] product not found order_id=%d product_id=%d", order.ID, it.ProductID)
			return nil, fmt.Errorf("%w: product_id=%d", ErrProductNotFound, it.ProductID)
		}

		amount, err := conv.apply(ctx, it.UnitPriceInclTax)
		if err != nil {
			return nil, err
		}

		item := entities.PaymentItem{
			ID:          strconv.Itoa(it.ID),
			Description: product.Name,
			Quantity:    it.Quantity,
			Amount:      amount,
		}
		if it.ItemWeight != nil {
			w := it.ItemWeight.RoundBank(0).IntPart()
			item.Weight = &w
		}
		items = append(items, item)
	}
	return items, nil
}

func (b *PaymentRequestBuilder) shipping(ctx context.Context, order entities.Order, customer entities.Customer, conv *conversion) (entities.Shipping, error) {
	shipping := entities.Shipping{Type: entities.ShippingTypeNotSpecified}

	addr, err := b.addresses.GetCustomerShippingAddress(ctx, customer)
	if err != nil {
		return entities.Shipping{}, fmt.Errorf("load shipping address customer_id=%d: %w", customer.ID, err)
	}
	if addr != nil {
		country, err := b.addresses.GetCountryByAddress(ctx, *addr)
		if err != nil {
			return entities.Shipping{}, fmt.Errorf("load country address_id=%d: %w", addr.ID, err)
		}
		state, err := b.addresses.GetStateProvinceByAddress(ctx, *addr)
		if err != nil {
			return entities.Shipping{}, fmt.Errorf("load state province address_id=%d: %w", addr.ID, err)
		}
		shipping.Address = entities.ShippingAddress{
			Street:     addr.Address1,
			City:       addr.City,
			PostalCode: addr.ZipPostalCode,
			Country:    country.Name,
			State:      state.Name,
		}
	} else {
		log.Printf("[payment][builder] no shipping address order_id=%d customer_id=%d", order.ID, customer.ID)
	}

	// Always set, even without an address.
	if shipping.Cost, err = conv.apply(ctx, order.OrderShippingInclTax); err != nil {
		return entities.Shipping{}, err
	}
	return shipping, nil
}

func (b *PaymentRequestBuilder) sender(ctx context.Context, customer entities.Customer) (entities.Sender, error) {
	billing, err := b.addresses.GetCustomerBillingAddress(ctx, customer)
	if err != nil {
		return entities.Sender{}, fmt.Errorf("load billing address customer_id=%d: %w", customer.ID, err)
	}
	if billing == nil {
		log.Printf("[payment][builder] billing address not found customer_id=%d", customer.ID)
		return entities.Sender{}, fmt.Errorf("%w: customer_id=%d", ErrBillingAddressNotFound, customer.ID)
	}
	return entities.Sender{
		Name:  billing.FirstName + " " + billing.LastName,
		Email: customer.Email,
	}, nil
}

// conversion is the currency policy resolved once per build.
type conversion struct {
	currencies interfaces.ICurrencyConverter
	settlement entities.Currency
	same       bool
}

func (b *PaymentRequestBuilder) conversion(ctx context.Context, code string) (*conversion, error) {
	settlement, err := b.currencies.GetCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("load currency %s: %w", code, err)
	}
	if settlement.ID == 0 {
		log.Printf("[payment][builder] settlement currency not registered code=%s", code)
		return nil, fmt.Errorf("%w: code=%s", ErrSettlementCurrencyNotFound, code)
	}

	primary, err := b.currencies.GetPrimaryStoreCurrency(ctx)
	if err != nil {
		return nil, fmt.Errorf("load primary store currency: %w", err)
	}
	if primary.ID == 0 {
		return nil, ErrPrimaryCurrencyNotFound
	}

	return &conversion{
		currencies: b.currencies,
		settlement: settlement,
		same:       settlement.CurrencyCode == primary.CurrencyCode,
	}, nil
}

func (c *conversion) apply(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if c.same {
		return amount.Round(2), nil
	}
	converted, err := c.currencies.ConvertFromPrimaryStoreCurrency(ctx, amount, c.settlement)
	if err != nil {
		return decimal.Zero, fmt.Errorf("convert %s to %s: %w", amount.String(), c.settlement.CurrencyCode, err)
	}
	return converted.Round(2), nil
}
