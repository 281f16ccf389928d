package usecase

import (
	"context"
	"errors"
	"testing"

	"payment_gateway/internal/domain/entities"
	mock_interfaces "payment_gateway/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var (
	currencyBRL = entities.Currency{ID: 1, CurrencyCode: "BRL", Rate: decimal.NewFromInt(1)}
	currencyUSD = entities.Currency{ID: 2, CurrencyCode: "USD", Rate: decimal.NewFromInt(1)}
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testSetting() entities.PaymentSetting {
	return entities.PaymentSetting{
		StoreID:                 1,
		AccountEmail:            "seller@loja.com.br",
		AccountToken:            "token-123",
		PaymentMethodSystemName: "Payments.PagSeguro",
		SettlementCurrencyCode:  "BRL",
		PendingStatuses:         []entities.PaymentStatus{entities.PaymentStatusPending},
		TieBreak:                entities.TieBreakFirst,
	}
}

type builderMocks struct {
	orders     *mock_interfaces.MockIOrderReader
	addresses  *mock_interfaces.MockIAddressResolver
	currencies *mock_interfaces.MockICurrencyConverter
}

func newTestBuilder(ctrl *gomock.Controller) (*PaymentRequestBuilder, builderMocks) {
	m := builderMocks{
		orders:     mock_interfaces.NewMockIOrderReader(ctrl),
		addresses:  mock_interfaces.NewMockIAddressResolver(ctrl),
		currencies: mock_interfaces.NewMockICurrencyConverter(ctrl),
	}
	return NewPaymentRequestBuilder(m.orders, m.addresses, m.currencies, StaticSettings(testSetting())), m
}

func TestPaymentRequestBuilder_Build_NoShippingAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	b, m := newTestBuilder(ctrl)

	order := entities.Order{ID: 42, CustomerID: 7, OrderShippingInclTax: dec("12.345")}
	customer := entities.Customer{ID: 7, Email: "buyer@example.com"}

	m.currencies.EXPECT().GetCurrencyByCode(gomock.Any(), "BRL").Return(currencyBRL, nil)
	m.currencies.EXPECT().GetPrimaryStoreCurrency(gomock.Any()).Return(currencyBRL, nil)
	m.orders.EXPECT().GetCustomerByID(gomock.Any(), 7).Return(customer, nil)
	m.orders.EXPECT().GetOrderItems(gomock.Any(), 42).Return([]entities.OrderItem{
		{ID: 100, OrderID: 42, ProductID: 1, Quantity: 2, UnitPriceInclTax: dec("10.00")},
		{ID: 101, OrderID: 42, ProductID: 2, Quantity: 1, UnitPriceInclTax: dec("5.50")},
	}, nil)
	m.orders.EXPECT().GetProductByID(gomock.Any(), 1).Return(entities.Product{ID: 1, Name: "Camiseta"}, nil)
	m.orders.EXPECT().GetProductByID(gomock.Any(), 2).Return(entities.Product{ID: 2, Name: "E-book"}, nil)
	m.addresses.EXPECT().GetCustomerShippingAddress(gomock.Any(), customer).Return(nil, nil)
	m.addresses.EXPECT().GetCustomerBillingAddress(gomock.Any(), customer).Return(&entities.Address{FirstName: "Maria", LastName: "Silva"}, nil)

	req, err := b.Build(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Reference != "42" || req.Currency != "BRL" {
		t.Fatalf("unexpected header: %+v", req)
	}
	if len(req.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(req.Items))
	}
	if !req.Items[0].Amount.Equal(dec("10.00")) || req.Items[0].Quantity != 2 || req.Items[0].Description != "Camiseta" || req.Items[0].ID != "100" {
		t.Fatalf("unexpected first item: %+v", req.Items[0])
	}
	if !req.Items[1].Amount.Equal(dec("5.50")) || req.Items[1].Quantity != 1 {
		t.Fatalf("unexpected second item: %+v", req.Items[1])
	}
	if req.Items[0].Weight != nil || req.Items[1].Weight != nil {
		t.Fatalf("expected no weights, got %+v", req.Items)
	}
	if !req.Shipping.Cost.Equal(dec("12.35")) {
		t.Fatalf("expected shipping cost 12.35, got %s", req.Shipping.Cost)
	}
	if req.Shipping.Type != entities.ShippingTypeNotSpecified {
		t.Fatalf("expected not specified shipping type, got %v", req.Shipping.Type)
	}
	if req.Shipping.Address != (entities.ShippingAddress{}) {
		t.Fatalf("expected empty shipping address fields, got %+v", req.Shipping.Address)
	}
	if req.Sender.Name != "Maria Silva" || req.Sender.Email != "buyer@example.com" {
		t.Fatalf("unexpected sender: %+v", req.Sender)
	}
}

func TestPaymentRequestBuilder_Build_WithShippingAddressAndWeight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	b, m := newTestBuilder(ctrl)

	countryID, stateID := 10, 20
	order := entities.Order{ID: 7, CustomerID: 3, OrderShippingInclTax: dec("0")}
	customer := entities.Customer{ID: 3, Email: "joao@example.com"}
	shippingAddr := &entities.Address{ID: 5, City: "Campinas", ZipPostalCode: "13010-000", Address1: "Rua das Flores, 100", CountryID: &countryID, StateProvinceID: &stateID}
	weight := dec("1.5")

	m.currencies.EXPECT().GetCurrencyByCode(gomock.Any(), "BRL").Return(currencyBRL, nil)
	m.currencies.EXPECT().GetPrimaryStoreCurrency(gomock.Any()).Return(currencyBRL, nil)
	m.orders.EXPECT().GetCustomerByID(gomock.Any(), 3).Return(customer, nil)
	m.orders.EXPECT().GetOrderItems(gomock.Any(), 7).Return([]entities.OrderItem{
		{ID: 1, ProductID: 9, Quantity: 1, UnitPriceInclTax: dec("99.999"), ItemWeight: &weight},
	}, nil)
	m.orders.EXPECT().GetProductByID(gomock.Any(), 9).Return(entities.Product{ID: 9, Name: "Caneca"}, nil)
	m.addresses.EXPECT().GetCustomerShippingAddress(gomock.Any(), customer).Return(shippingAddr, nil)
	m.addresses.EXPECT().GetCountryByAddress(gomock.Any(), *shippingAddr).Return(entities.Country{ID: 10, Name: "Brasil"}, nil)
	m.addresses.EXPECT().GetStateProvinceByAddress(gomock.Any(), *shippingAddr).Return(entities.StateProvince{ID: 20, Name: "São Paulo"}, nil)
	m.addresses.EXPECT().GetCustomerBillingAddress(gomock.Any(), customer).Return(&entities.Address{FirstName: "João", LastName: "Souza"}, nil)

	req, err := b.Build(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := entities.ShippingAddress{Street: "Rua das Flores, 100", City: "Campinas", PostalCode: "13010-000", Country: "Brasil", State: "São Paulo"}
	if req.Shipping.Address != want {
		t.Fatalf("unexpected shipping address: %+v", req.Shipping.Address)
	}
	if !req.Shipping.Cost.Equal(decimal.Zero) {
		t.Fatalf("expected zero shipping cost, got %s", req.Shipping.Cost)
	}
	if !req.Items[0].Amount.Equal(dec("100.00")) {
		t.Fatalf("expected 100.00, got %s", req.Items[0].Amount)
	}
	// 1.5 rounds to even.
	if req.Items[0].Weight == nil || *req.Items[0].Weight != 2 {
		t.Fatalf("unexpected weight: %v", req.Items[0].Weight)
	}
}

func TestPaymentRequestBuilder_Build_DataIntegrity(t *testing.T) {
	order := entities.Order{ID: 42, CustomerID: 7}
	customer := entities.Customer{ID: 7, Email: "buyer@example.com"}

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b, m := newTestBuilder(ctrl)

		m.currencies.EXPECT().GetCurrencyByCode(gomock.Any(), "BRL").Return(currencyBRL, nil)
		m.currencies.EXPECT().GetPrimaryStoreCurrency(gomock.Any()).Return(currencyBRL, nil)
		m.orders.EXPECT().GetCustomerByID(gomock.Any(), 7).Return(entities.Customer{}, nil)

		_, err := b.Build(context.Background(), order)
		if !errors.Is(err, ErrCustomerNotFound) || !errors.Is(err, ErrDataIntegrity) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b, m := newTestBuilder(ctrl)

		m.currencies.EXPECT().GetCurrencyByCode(gomock.Any(), "BRL").Return(currencyBRL, nil)
		m.currencies.EXPECT().GetPrimaryStoreCurrency(gomock.Any()).Return(currencyBRL, nil)
		m.orders.EXPECT().GetCustomerByID(gomock.Any(), 7).Return(customer, nil)
		m.orders.EXPECT().GetOrderItems(gomock.Any(), 42).Return([]entities.OrderItem{{ID: 1, ProductID: 99, Quantity: 1, UnitPriceInclTax: dec("1")}}, nil)
		m.orders.EXPECT().GetProductByID(gomock.Any(), 99).Return(entities.Product{}, nil)

		_, err := b.Build(context.Background(), order)
		if !errors.Is(err, ErrProductNotFound) || !errors.Is(err, ErrDataIntegrity) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("billing address not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b, m := newTestBuilder(ctrl)

		m.currencies.EXPECT().GetCurrencyByCode(gomock.Any(), "BRL").Return(currencyBRL, nil)
		m.currencies.EXPECT().GetPrimaryStoreCurrency(gomock.Any()).Return(currencyBRL, nil)
		m.orders.EXPECT().GetCustomerByID(gomock.Any(), 7).Return(customer, nil)
		m.orders.EXPECT().GetOrderItems(gomock.Any(), 42).Return(nil, nil)
		m.addresses.EXPECT().GetCustomerShippingAddress(gomock.Any(), customer).Return(nil, nil)
		m.addresses.EXPECT().GetCustomerBillingAddress(gomock.Any(), customer).Return(nil, nil)

		_, err := b.Build(context.Background(), order)
		if !errors.Is(err, ErrBillingAddressNotFound) || !errors.Is(err, ErrDataIntegrity) {
			t.Fatalf("expected ErrBillingAddressNotFound, got %v", err)
		}
	})
}

func TestPaymentRequestBuilder_Build_SettlementCurrencyNotRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	b, m := newTestBuilder(ctrl)

	m.currencies.EXPECT().GetCurrencyByCode(gomock.Any(), "BRL").Return(entities.Currency{}, nil)

	_, err := b.Build(context.Background(), entities.Order{ID: 1, CustomerID: 1})
	if !errors.Is(err, ErrSettlementCurrencyNotFound) || !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrSettlementCurrencyNotFound, got %v", err)
	}
}

func TestPaymentRequestBuilder_Convert(t *testing.T) {
	t.Run("same currency only rounds half away from zero", func(t *testing.T) {
		cases := []struct{ in, want string }{
			{"2.345", "2.35"},
			{"2.344", "2.34"},
			{"2.355", "2.36"},
			{"10", "10.00"},
			{"-2.345", "-2.35"},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			b, m := newTestBuilder(ctrl)
			m.currencies.EXPECT().GetCurrencyByCode(gomock.Any(), "BRL").Return(currencyBRL, nil)
			m.currencies.EXPECT().GetPrimaryStoreCurrency(gomock.Any()).Return(currencyBRL, nil)

			got, err := b.Convert(context.Background(), dec(tc.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(dec(tc.want)) {
				t.Fatalf("convert(%s): expected %s, got %s", tc.in, tc.want, got)
			}
			ctrl.Finish()
		}
	})

	t.Run("different currency applies exchange rate then rounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b, m := newTestBuilder(ctrl)

		m.currencies.EXPECT().GetCurrencyByCode(gomock.Any(), "BRL").Return(currencyBRL, nil).Times(2)
		m.currencies.EXPECT().GetPrimaryStoreCurrency(gomock.Any()).Return(currencyUSD, nil).Times(2)
		m.currencies.EXPECT().ConvertFromPrimaryStoreCurrency(gomock.Any(), gomock.Any(), currencyBRL).DoAndReturn(
			func(_ context.Context, amount decimal.Decimal, _ entities.Currency) (decimal.Decimal, error) {
				return amount.Mul(dec("0.20")), nil
			},
		).Times(2)

		got, err := b.Convert(context.Background(), dec("100.00"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(dec("20.00")) {
			t.Fatalf("expected 20.00, got %s", got)
		}

		// 11.725 * 0.20 = 2.345
		got, err = b.Convert(context.Background(), dec("11.725"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(dec("2.35")) {
			t.Fatalf("expected 2.35, got %s", got)
		}
	})

	t.Run("exchange service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b, m := newTestBuilder(ctrl)

		m.currencies.EXPECT().GetCurrencyByCode(gomock.Any(), "BRL").Return(currencyBRL, nil)
		m.currencies.EXPECT().GetPrimaryStoreCurrency(gomock.Any()).Return(currencyUSD, nil)
		m.currencies.EXPECT().ConvertFromPrimaryStoreCurrency(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.Zero, errors.New("rates down"))

		if _, err := b.Convert(context.Background(), dec("1")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("settlement currency missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b, m := newTestBuilder(ctrl)

		m.currencies.EXPECT().GetCurrencyByCode(gomock.Any(), "BRL").Return(entities.Currency{}, nil)

		_, err := b.Convert(context.Background(), dec("1"))
		if !errors.Is(err, ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration, got %v", err)
		}
	})
}
