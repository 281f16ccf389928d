package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"payment_gateway/internal/adapter/persistence/host"
	"payment_gateway/internal/adapter/persistence/repository"
	"payment_gateway/internal/config"
	"payment_gateway/internal/infrastructure/database"
	"payment_gateway/internal/infrastructure/messaging"
	"payment_gateway/internal/infrastructure/payments"
	"payment_gateway/internal/infrastructure/telemetry"
	"payment_gateway/internal/usecase"
	"payment_gateway/internal/usecase/interfaces"
)

// App holds the wired use cases shared by the HTTP service and the reconcile job.
type App struct {
	Config     *config.Config
	Settings   *usecase.SettingsUseCase
	Payments   *usecase.PaymentUseCase
	Reconciler *usecase.PaymentReconciler
	Metrics    http.Handler

	closers []func(context.Context) error
}

// New connects every dependency and loads the payment setting. It fails when the
// setting is unusable (for example, the settlement currency is not registered),
// so a misconfigured process never starts serving.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.ServiceVersion, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	a.closers = append(a.closers, shutdownTracer)

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider(cfg.Telemetry.ServiceName, cfg.Telemetry.ServiceVersion)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	a.Metrics = metricsHandler
	a.closers = append(a.closers, shutdownMeter)

	hostDB, err := database.OpenHostDB(cfg.HostDB, host.Models()...)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("open host db: %w", err)
	}
	if sqlDB, err := hostDB.DB(); err == nil {
		a.closers = append(a.closers, func(context.Context) error { return sqlDB.Close() })
	}
	store := host.NewStore(hostDB, cfg.Store.PrimaryCurrency)

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS, cfg.DynamoDB)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	if cfg.DynamoDB.AutoCreateTables {
		if err := database.EnsureTables(ctx, ddb, cfg.DynamoDB.RegistrationsTable, cfg.DynamoDB.SettingsTable); err != nil {
			a.Close(ctx)
			return nil, fmt.Errorf("ensure tables: %w", err)
		}
	}
	registrations := repository.NewPaymentRegistrationDynamoRepository(ddb, cfg.DynamoDB.RegistrationsTable)
	settingsRepo := repository.NewPaymentSettingDynamoRepository(ddb, cfg.DynamoDB.SettingsTable)

	a.Settings = usecase.NewSettingsUseCase(settingsRepo, store, cfg.PaymentSettingDefaults())
	if _, err := a.Settings.Reload(ctx); err != nil {
		if errors.Is(err, usecase.ErrConfiguration) {
			log.Printf("[app][startup] refusing to start: payment setting invalid err=%v", err)
		}
		a.Close(ctx)
		return nil, fmt.Errorf("load payment setting: %w", err)
	}

	gateway := payments.NewMercadoPagoGateway(payments.MercadoPagoOptions{
		NotificationURL:     cfg.Gateway.NotificationURL,
		BackURL:             cfg.Gateway.BackURL,
		StatementDescriptor: cfg.Gateway.StatementDescriptor,
	})

	var publisher interfaces.IOrderEventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := messaging.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		a.closers = append(a.closers, func(context.Context) error { return producer.Close() })
		publisher = producer
		log.Printf("[app][startup] order events enabled topic=%s", cfg.Kafka.Topic)
	}

	builder := usecase.NewPaymentRequestBuilder(store, store, store, a.Settings)
	a.Payments = usecase.NewPaymentUseCase(store, builder, gateway, registrations, a.Settings, cfg.Gateway.RequestTimeout)
	a.Reconciler = usecase.NewPaymentReconciler(store, store, gateway, publisher, a.Settings, cfg.Gateway.RequestTimeout, cfg.Gateway.ReconcileConcurrency)

	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			log.Printf("[app][shutdown] close failed err=%v", err)
		}
	}
	a.closers = nil
}
