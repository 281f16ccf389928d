package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var paymentTracer = otel.Tracer("usecase/payment")

// IPaymentUseCase is the checkout side: build a request for an order, register it
// at the gateway and hand back the URL the buyer is redirected to.
type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, orderID int) (entities.PaymentRegistration, error)
	PreviewPayment(ctx context.Context, orderID int) (entities.PaymentRequest, error)
	ListByOrderID(ctx context.Context, orderID int) ([]entities.PaymentRegistration, error)
}

type PaymentUseCase struct {
	orders         interfaces.IOrderReader
	builder        IPaymentRequestBuilder
	gateway        interfaces.IPaymentGateway
	repo           interfaces.IPaymentRegistrationRepository
	settings       SettingsSource
	requestTimeout time.Duration
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(orders interfaces.IOrderReader, builder IPaymentRequestBuilder, gateway interfaces.IPaymentGateway, repo interfaces.IPaymentRegistrationRepository, settings SettingsSource, requestTimeout time.Duration) *PaymentUseCase {
	return &PaymentUseCase{
		orders:         orders,
		builder:        builder,
		gateway:        gateway,
		repo:           repo,
		settings:       settings,
		requestTimeout: requestTimeout,
	}
}

// CreatePayment registers the order at the gateway exactly once. A gateway failure
// is returned as ErrGateway and never retried here: registration is not idempotent.
func (u *PaymentUseCase) CreatePayment(ctx context.Context, orderID int) (entities.PaymentRegistration, error) {
	ctx, span := paymentTracer.Start(ctx, "payment.create")
	defer span.End()
	span.SetAttributes(attribute.Int("order.id", orderID))

	log.Printf("[payment][usecase] create start order_id=%d", orderID)
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured order_id=%d", orderID)
		return entities.PaymentRegistration{}, errors.New("payment gateway not configured")
	}

	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.PaymentRegistration{}, err
	}

	credentials := u.settings.Current().Credentials()
	if err := ValidateCredentials(credentials); err != nil {
		log.Printf("[payment][usecase] invalid credentials order_id=%d err=%v", orderID, err)
		return entities.PaymentRegistration{}, err
	}

	req, err := u.builder.Build(ctx, order)
	if err != nil {
		log.Printf("[payment][usecase] build failed order_id=%d err=%v", orderID, err)
		return entities.PaymentRegistration{}, err
	}

	raw, err := json.Marshal(req)
	if err != nil {
		log.Printf("[payment][usecase] request marshal failed order_id=%d err=%v", orderID, err)
	}

	reg := entities.PaymentRegistration{
		ID:         uuid.NewString(),
		OrderID:    order.ID,
		Reference:  req.Reference,
		Date:       time.Now().UTC(),
		Currency:   req.Currency,
		Total:      req.Total(),
		RequestRaw: raw,
	}

	log.Printf("[payment][usecase] calling payment gateway order_id=%d reference=%s", orderID, req.Reference)
	redirectURL, err := u.register(ctx, credentials, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Printf("[payment][usecase] payment gateway failed order_id=%d err=%v", orderID, err)
		reg.Status = entities.RegistrationStatusFailed
		reg.Error = err.Error()
		u.record(ctx, reg)
		return entities.PaymentRegistration{}, err
	}

	reg.Status = entities.RegistrationStatusRegistered
	reg.RedirectURL = redirectURL
	u.record(ctx, reg)

	log.Printf("[payment][usecase] create success order_id=%d registration_id=%s", orderID, reg.ID)
	return reg, nil
}

func (u *PaymentUseCase) PreviewPayment(ctx context.Context, orderID int) (entities.PaymentRequest, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	return u.builder.Build(ctx, order)
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID int) ([]entities.PaymentRegistration, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByReference(ctx, entities.OrderReference(orderID))
}

func (u *PaymentUseCase) loadOrder(ctx context.Context, orderID int) (entities.Order, error) {
	if orderID <= 0 {
		log.Printf("[payment][usecase] invalid order_id=%d", orderID)
		return entities.Order{}, ErrInvalidOrderID
	}
	order, err := u.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%d err=%v", orderID, err)
		return entities.Order{}, err
	}
	if order.ID == 0 {
		log.Printf("[payment][usecase] order not found order_id=%d", orderID)
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *PaymentUseCase) register(ctx context.Context, credentials entities.Credentials, req entities.PaymentRequest) (string, error) {
	if u.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.requestTimeout)
		defer cancel()
	}
	redirectURL, err := u.gateway.RegisterPayment(ctx, credentials, req)
	if err != nil {
		return "", gatewayError("register payment", err)
	}
	if redirectURL == "" {
		return "", gatewayError("register payment", errors.New("empty redirect url"))
	}
	return redirectURL, nil
}

// record keeps the audit trail. The charge already exists at the gateway, so a
// store failure here must not fail the checkout.
func (u *PaymentUseCase) record(ctx context.Context, reg entities.PaymentRegistration) {
	if u.repo == nil {
		return
	}
	if _, err := u.repo.Create(ctx, reg); err != nil {
		log.Printf("[payment][usecase] registration store failed order_id=%d registration_id=%s status=%s err=%v", reg.OrderID, reg.ID, reg.Status, err)
	}
}

