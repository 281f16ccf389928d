package usecase

import (
	"context"
	"fmt"
	"log"
	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateCredentials rejects missing or malformed gateway credentials.
func ValidateCredentials(c entities.Credentials) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	return nil
}

// ISettingsUseCase owns the persisted payment setting of the store.
//
// The setting is read into an immutable snapshot; Current never hits storage.
// Only Reload and Update replace the snapshot.
type ISettingsUseCase interface {
	SettingsSource
	Reload(ctx context.Context) (entities.PaymentSetting, error)
	Update(ctx context.Context, s entities.PaymentSetting) (entities.PaymentSetting, error)
}

type SettingsUseCase struct {
	repo       interfaces.IPaymentSettingRepository
	currencies interfaces.ICurrencyConverter
	defaults   entities.PaymentSetting
	current    atomic.Pointer[entities.PaymentSetting]
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

// NewSettingsUseCase takes the env-provided defaults used to seed an empty store.
func NewSettingsUseCase(repo interfaces.IPaymentSettingRepository, currencies interfaces.ICurrencyConverter, defaults entities.PaymentSetting) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, currencies: currencies, defaults: defaults}
}

func (u *SettingsUseCase) Current() entities.PaymentSetting {
	if s := u.current.Load(); s != nil {
		return *s
	}
	return u.defaults
}

// Reload reads the stored setting (seeding it from defaults on first run),
// validates it and swaps the snapshot.
func (u *SettingsUseCase) Reload(ctx context.Context) (entities.PaymentSetting, error) {
	log.Printf("[settings][usecase] reload start store_id=%d", u.defaults.StoreID)
	s, found, err := u.repo.Get(ctx, u.defaults.StoreID)
	if err != nil {
		log.Printf("[settings][usecase] load failed store_id=%d err=%v", u.defaults.StoreID, err)
		return entities.PaymentSetting{}, err
	}

	if !found {
		log.Printf("[settings][usecase] no stored setting; seeding from environment store_id=%d", u.defaults.StoreID)
		s = u.defaults
		if err := u.validate(ctx, s); err != nil {
			return entities.PaymentSetting{}, err
		}
		s.UpdatedAt = time.Now().UTC()
		if s, err = u.repo.Put(ctx, s); err != nil {
			log.Printf("[settings][usecase] seed failed store_id=%d err=%v", u.defaults.StoreID, err)
			return entities.PaymentSetting{}, err
		}
	} else if err := u.validate(ctx, s); err != nil {
		return entities.PaymentSetting{}, err
	}

	u.current.Store(&s)
	log.Printf("[settings][usecase] reload success store_id=%d currency=%s token_set=%t", s.StoreID, s.SettlementCurrencyCode, s.AccountToken != "")
	return s, nil
}

// Update persists a new setting. An empty AccountToken keeps the stored token.
func (u *SettingsUseCase) Update(ctx context.Context, s entities.PaymentSetting) (entities.PaymentSetting, error) {
	prev := u.Current()
	s.StoreID = prev.StoreID
	if strings.TrimSpace(s.AccountToken) == "" {
		s.AccountToken = prev.AccountToken
	}
	if s.PaymentMethodSystemName == "" {
		s.PaymentMethodSystemName = prev.PaymentMethodSystemName
	}
	if s.TieBreak == "" {
		s.TieBreak = prev.TieBreak
	}
	s.SettlementCurrencyCode = strings.ToUpper(strings.TrimSpace(s.SettlementCurrencyCode))

	if err := u.validate(ctx, s); err != nil {
		return entities.PaymentSetting{}, err
	}

	s.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Put(ctx, s)
	if err != nil {
		log.Printf("[settings][usecase] update failed store_id=%d err=%v", s.StoreID, err)
		return entities.PaymentSetting{}, err
	}
	u.current.Store(&saved)
	log.Printf("[settings][usecase] update success store_id=%d currency=%s", saved.StoreID, saved.SettlementCurrencyCode)
	return saved, nil
}

func (u *SettingsUseCase) validate(ctx context.Context, s entities.PaymentSetting) error {
	if err := validate.Struct(s); err != nil {
		log.Printf("[settings][usecase] invalid setting store_id=%d err=%v", s.StoreID, err)
		return fmt.Errorf("%w: %v", ErrInvalidPaymentSetting, err)
	}

	cur, err := u.currencies.GetCurrencyByCode(ctx, s.SettlementCurrencyCode)
	if err != nil {
		return fmt.Errorf("load currency %s: %w", s.SettlementCurrencyCode, err)
	}
	if cur.ID == 0 {
		log.Printf("[settings][usecase] settlement currency not registered code=%s", s.SettlementCurrencyCode)
		return fmt.Errorf("%w: code=%s", ErrSettlementCurrencyNotFound, s.SettlementCurrencyCode)
	}
	return nil
}
