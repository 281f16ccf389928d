package host

import (
	"context"
	"errors"
	"fmt"
	"log"
	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Store adapts the e-commerce platform database to the host capabilities the
// gateway needs. Lookups that find nothing return zero values (ID == 0) or nil
// addresses, never an error.
type Store struct {
	db                  *gorm.DB
	primaryCurrencyCode string
}

var (
	_ interfaces.IOrderReader       = (*Store)(nil)
	_ interfaces.IAddressResolver   = (*Store)(nil)
	_ interfaces.ICurrencyConverter = (*Store)(nil)
	_ interfaces.IOrderMutator      = (*Store)(nil)
)

func NewStore(db *gorm.DB, primaryCurrencyCode string) *Store {
	return &Store{db: db, primaryCurrencyCode: primaryCurrencyCode}
}

// first loads one row by primary key, mapping "not found" to found=false.
func first[T any](ctx context.Context, db *gorm.DB, id int) (T, bool, error) {
	var m T
	err := db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m, false, nil
	}
	if err != nil {
		return m, false, err
	}
	return m, true, nil
}

func (s *Store) GetOrderByID(ctx context.Context, id int) (entities.Order, error) {
	m, found, err := first[orderModel](ctx, s.db.Where("deleted = ?", false), id)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return m.toEntity(), nil
}

func (s *Store) GetOrderItems(ctx context.Context, orderID int) ([]entities.OrderItem, error) {
	var rows []orderItemModel
	if err := s.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.OrderItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toEntity())
	}
	return items, nil
}

func (s *Store) GetProductByID(ctx context.Context, id int) (entities.Product, error) {
	m, found, err := first[productModel](ctx, s.db, id)
	if err != nil || !found {
		return entities.Product{}, err
	}
	return entities.Product{ID: m.ID, Name: m.Name}, nil
}

func (s *Store) GetCustomerByID(ctx context.Context, id int) (entities.Customer, error) {
	m, found, err := first[customerModel](ctx, s.db, id)
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return entities.Customer{
		ID:                m.ID,
		Email:             m.Email,
		BillingAddressID:  m.BillingAddressID,
		ShippingAddressID: m.ShippingAddressID,
	}, nil
}

// SearchOrders returns non-deleted orders matching the filter, oldest first.
// StoreID 0 searches every store.
func (s *Store) SearchOrders(ctx context.Context, f entities.OrderSearchFilter) ([]entities.Order, error) {
	q := s.db.WithContext(ctx).Model(&orderModel{}).Where("deleted = ?", false)
	if f.StoreID > 0 {
		q = q.Where("store_id = ?", f.StoreID)
	}
	if f.PaymentMethodSystemName != "" {
		q = q.Where("payment_method_system_name = ?", f.PaymentMethodSystemName)
	}
	if len(f.PaymentStatuses) > 0 {
		ids := make([]int, 0, len(f.PaymentStatuses))
		for _, st := range f.PaymentStatuses {
			ids = append(ids, int(st))
		}
		q = q.Where("payment_status_id IN ?", ids)
	}

	var rows []orderModel
	if err := q.Order("created_on_utc, id").Find(&rows).Error; err != nil {
		log.Printf("[host][store] search orders failed err=%v", err)
		return nil, err
	}
	orders := make([]entities.Order, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, r.toEntity())
	}
	return orders, nil
}

func (s *Store) GetCustomerBillingAddress(ctx context.Context, c entities.Customer) (*entities.Address, error) {
	return s.address(ctx, c.BillingAddressID)
}

func (s *Store) GetCustomerShippingAddress(ctx context.Context, c entities.Customer) (*entities.Address, error) {
	return s.address(ctx, c.ShippingAddressID)
}

func (s *Store) address(ctx context.Context, id *int) (*entities.Address, error) {
	if id == nil {
		return nil, nil
	}
	m, found, err := first[addressModel](ctx, s.db, *id)
	if err != nil || !found {
		return nil, err
	}
	a := m.toEntity()
	return &a, nil
}

func (s *Store) GetCountryByAddress(ctx context.Context, a entities.Address) (entities.Country, error) {
	if a.CountryID == nil {
		return entities.Country{}, nil
	}
	m, found, err := first[countryModel](ctx, s.db, *a.CountryID)
	if err != nil || !found {
		return entities.Country{}, err
	}
	return entities.Country{ID: m.ID, Name: m.Name, TwoLetterISO: m.TwoLetterIsoCode, ThreeLetterISO: m.ThreeLetterIsoCode}, nil
}

func (s *Store) GetStateProvinceByAddress(ctx context.Context, a entities.Address) (entities.StateProvince, error) {
	if a.StateProvinceID == nil {
		return entities.StateProvince{}, nil
	}
	m, found, err := first[stateProvinceModel](ctx, s.db, *a.StateProvinceID)
	if err != nil || !found {
		return entities.StateProvince{}, err
	}
	return entities.StateProvince{ID: m.ID, CountryID: m.CountryID, Name: m.Name, Abbreviation: m.Abbreviation}, nil
}

func (s *Store) GetCurrencyByCode(ctx context.Context, code string) (entities.Currency, error) {
	var m currencyModel
	err := s.db.WithContext(ctx).Where("currency_code = ?", code).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Currency{}, nil
	}
	if err != nil {
		return entities.Currency{}, err
	}
	return m.toEntity(), nil
}

func (s *Store) GetPrimaryStoreCurrency(ctx context.Context) (entities.Currency, error) {
	return s.GetCurrencyByCode(ctx, s.primaryCurrencyCode)
}

// ConvertFromPrimaryStoreCurrency scales amount by target.Rate / primary.Rate.
// The result is not rounded.
func (s *Store) ConvertFromPrimaryStoreCurrency(ctx context.Context, amount decimal.Decimal, target entities.Currency) (decimal.Decimal, error) {
	primary, err := s.GetPrimaryStoreCurrency(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if primary.ID == 0 {
		return decimal.Zero, fmt.Errorf("primary store currency %s not registered", s.primaryCurrencyCode)
	}
	if primary.Rate.IsZero() {
		return decimal.Zero, fmt.Errorf("primary store currency %s has zero rate", primary.CurrencyCode)
	}
	return amount.Mul(target.Rate).Div(primary.Rate), nil
}

// CanMarkOrderAsPaid rejects cancelled orders and orders already paid, refunded or voided.
func (s *Store) CanMarkOrderAsPaid(_ context.Context, o entities.Order) (bool, error) {
	if o.OrderStatus == entities.OrderStatusCancelled {
		return false, nil
	}
	switch o.PaymentStatus {
	case entities.PaymentStatusPaid, entities.PaymentStatusRefunded, entities.PaymentStatusVoided:
		return false, nil
	}
	return true, nil
}

// MarkOrderAsPaid sets the payment status to paid, stamps the paid date, moves a
// pending order to processing and leaves an order note. The update is guarded on
// the current payment status, so a repeated call changes nothing.
func (s *Store) MarkOrderAsPaid(ctx context.Context, o entities.Order) error {
	now := time.Now().UTC()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&orderModel{}).
			Where("id = ? AND payment_status_id <> ?", o.ID, int(entities.PaymentStatusPaid)).
			Updates(map[string]interface{}{
				"payment_status_id": int(entities.PaymentStatusPaid),
				"paid_date_utc":     now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			log.Printf("[host][store] order already paid or missing order_id=%d", o.ID)
			return nil
		}

		if err := tx.Model(&orderModel{}).
			Where("id = ? AND order_status_id = ?", o.ID, int(entities.OrderStatusPending)).
			Update("order_status_id", int(entities.OrderStatusProcessing)).Error; err != nil {
			return err
		}

		if err := tx.Create(&orderNoteModel{
			OrderID:      o.ID,
			Note:         "Order has been marked as paid",
			CreatedOnUTC: now,
		}).Error; err != nil {
			return err
		}
		log.Printf("[host][store] order marked as paid order_id=%d", o.ID)
		return nil
	})
}
