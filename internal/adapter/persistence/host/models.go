package host

import (
	"payment_gateway/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

// Row shapes of the e-commerce platform tables the gateway reads and updates.

type orderModel struct {
	ID                      int             `gorm:"primaryKey"`
	StoreID                 int             `gorm:"index;not null"`
	CustomerID              int             `gorm:"index;not null"`
	PaymentMethodSystemName string          `gorm:"size:255;index"`
	PaymentStatusID         int             `gorm:"index;not null"`
	OrderStatusID           int             `gorm:"not null"`
	OrderShippingInclTax    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	OrderTotal              decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaidDateUTC             *time.Time
	Deleted                 bool `gorm:"not null;default:false"`
	CreatedOnUTC            time.Time
}

func (orderModel) TableName() string { return "orders" }

type orderItemModel struct {
	ID               int                 `gorm:"primaryKey"`
	OrderID          int                 `gorm:"index;not null"`
	ProductID        int                 `gorm:"not null"`
	Quantity         int                 `gorm:"not null"`
	UnitPriceInclTax decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	ItemWeight       decimal.NullDecimal `gorm:"type:decimal(18,4)"`
}

func (orderItemModel) TableName() string { return "order_items" }

type orderNoteModel struct {
	ID                int    `gorm:"primaryKey"`
	OrderID           int    `gorm:"index;not null"`
	Note              string `gorm:"type:text"`
	DisplayToCustomer bool
	CreatedOnUTC      time.Time
}

func (orderNoteModel) TableName() string { return "order_notes" }

type productModel struct {
	ID      int    `gorm:"primaryKey"`
	Name    string `gorm:"size:400;not null"`
	Deleted bool   `gorm:"not null;default:false"`
}

func (productModel) TableName() string { return "products" }

type customerModel struct {
	ID                int    `gorm:"primaryKey"`
	Email             string `gorm:"size:1000"`
	BillingAddressID  *int
	ShippingAddressID *int
}

func (customerModel) TableName() string { return "customers" }

type addressModel struct {
	ID              int `gorm:"primaryKey"`
	FirstName       string
	LastName        string
	Email           string
	City            string
	Address1        string
	Address2        string
	ZipPostalCode   string
	CountryID       *int
	StateProvinceID *int
}

func (addressModel) TableName() string { return "addresses" }

type countryModel struct {
	ID                 int    `gorm:"primaryKey"`
	Name               string `gorm:"size:100;not null"`
	TwoLetterIsoCode   string `gorm:"size:2"`
	ThreeLetterIsoCode string `gorm:"size:3"`
}

func (countryModel) TableName() string { return "countries" }

type stateProvinceModel struct {
	ID           int    `gorm:"primaryKey"`
	CountryID    int    `gorm:"index;not null"`
	Name         string `gorm:"size:100;not null"`
	Abbreviation string `gorm:"size:100"`
}

func (stateProvinceModel) TableName() string { return "state_provinces" }

type currencyModel struct {
	ID           int             `gorm:"primaryKey"`
	CurrencyCode string          `gorm:"size:5;uniqueIndex;not null"`
	Name         string          `gorm:"size:50"`
	Rate         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

func (currencyModel) TableName() string { return "currencies" }

// Models lists the host tables for AutoMigrate in local setups and tests.
func Models() []any {
	return []any{
		&orderModel{}, &orderItemModel{}, &orderNoteModel{}, &productModel{},
		&customerModel{}, &addressModel{}, &countryModel{}, &stateProvinceModel{}, &currencyModel{},
	}
}

func (m orderModel) toEntity() entities.Order {
	return entities.Order{
		ID:                      m.ID,
		StoreID:                 m.StoreID,
		CustomerID:              m.CustomerID,
		PaymentMethodSystemName: m.PaymentMethodSystemName,
		PaymentStatus:           entities.PaymentStatus(m.PaymentStatusID),
		OrderStatus:             entities.OrderStatus(m.OrderStatusID),
		OrderShippingInclTax:    m.OrderShippingInclTax,
		OrderTotal:              m.OrderTotal,
		PaidDateUTC:             m.PaidDateUTC,
		CreatedAt:               m.CreatedOnUTC,
	}
}

func (m orderItemModel) toEntity() entities.OrderItem {
	it := entities.OrderItem{
		ID:               m.ID,
		OrderID:          m.OrderID,
		ProductID:        m.ProductID,
		Quantity:         m.Quantity,
		UnitPriceInclTax: m.UnitPriceInclTax,
	}
	if m.ItemWeight.Valid {
		w := m.ItemWeight.Decimal
		it.ItemWeight = &w
	}
	return it
}

func (m addressModel) toEntity() entities.Address {
	return entities.Address{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Email:           m.Email,
		City:            m.City,
		Address1:        m.Address1,
		Address2:        m.Address2,
		ZipPostalCode:   m.ZipPostalCode,
		CountryID:       m.CountryID,
		StateProvinceID: m.StateProvinceID,
	}
}

func (m currencyModel) toEntity() entities.Currency {
	return entities.Currency{ID: m.ID, CurrencyCode: m.CurrencyCode, Name: m.Name, Rate: m.Rate}
}
