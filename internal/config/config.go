package config

import (
	"fmt"
	"payment_gateway/internal/domain/entities"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	HTTP      HTTPServer
	Store     Store     `envPrefix:"STORE_"`
	Gateway   Gateway   `envPrefix:"GATEWAY_"`
	AWS       AWS
	DynamoDB  DynamoDB  `envPrefix:"DYNAMODB_"`
	HostDB    HostDB    `envPrefix:"HOST_DB_"`
	Kafka     Kafka     `envPrefix:"KAFKA_"`
	Telemetry Telemetry `envPrefix:"OTEL_"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

// Store identifies the host store this instance serves. ID must be positive:
// reconciliation only looks at orders of this store.
type Store struct {
	ID              int    `env:"ID" envDefault:"1"`
	PrimaryCurrency string `env:"PRIMARY_CURRENCY" envDefault:"BRL"`
}

// Gateway seeds the persisted payment setting on first start.
type Gateway struct {
	AccountEmail             string        `env:"ACCOUNT_EMAIL"`
	AccountToken             string        `env:"ACCOUNT_TOKEN"`
	PaymentMethodDescription string        `env:"PAYMENT_METHOD_DESCRIPTION" envDefault:"You will be redirected to the payment gateway site to complete the order."`
	PaymentMethodSystemName  string        `env:"PAYMENT_METHOD_SYSTEM_NAME" envDefault:"Payments.PagSeguro"`
	SettlementCurrency       string        `env:"SETTLEMENT_CURRENCY" envDefault:"BRL"`
	PendingStatusCodes       []int         `env:"PENDING_STATUS_CODES" envDefault:"10" envSeparator:","`
	RequestTimeout           time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ReconcileConcurrency     int           `env:"RECONCILE_CONCURRENCY" envDefault:"4"`
	TransactionTieBreak      string        `env:"TRANSACTION_TIE_BREAK" envDefault:"first"`
	NotificationURL          string        `env:"NOTIFICATION_URL"`
	BackURL                  string        `env:"BACK_URL"`
	StatementDescriptor      string        `env:"STATEMENT_DESCRIPTOR"`
}

type AWS struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
}

type DynamoDB struct {
	Endpoint           string `env:"ENDPOINT"`
	RegistrationsTable string `env:"REGISTRATIONS_TABLE" envDefault:"payment_registrations"`
	SettingsTable      string `env:"SETTINGS_TABLE" envDefault:"payment_settings"`
	AutoCreateTables   bool   `env:"AUTO_CREATE_TABLES" envDefault:"false"`
}

// HostDB points at the e-commerce platform database. Driver is sqlite or mysql.
type HostDB struct {
	Driver      string `env:"DRIVER" envDefault:"sqlite"`
	DSN         string `env:"DSN" envDefault:"file:host.db?cache=shared"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"false"`
}

// Kafka publishing is disabled when Brokers is empty.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"orders.paid"`
}

type Telemetry struct {
	ServiceName    string `env:"SERVICE_NAME" envDefault:"payment-gateway"`
	ServiceVersion string `env:"SERVICE_VERSION" envDefault:"dev"`
	OTLPEndpoint   string `env:"EXPORTER_OTLP_ENDPOINT"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Store.ID <= 0 {
		return nil, fmt.Errorf("STORE_ID must be positive, got %d", cfg.Store.ID)
	}
	if cfg.Gateway.ReconcileConcurrency <= 0 {
		return nil, fmt.Errorf("GATEWAY_RECONCILE_CONCURRENCY must be positive, got %d", cfg.Gateway.ReconcileConcurrency)
	}
	switch d := strings.ToLower(cfg.HostDB.Driver); d {
	case "sqlite", "mysql":
		cfg.HostDB.Driver = d
	default:
		return nil, fmt.Errorf("unsupported HOST_DB_DRIVER %q", cfg.HostDB.Driver)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return c.HTTP.Host + ":" + c.HTTP.Port
}

// PaymentSettingDefaults is the setting written when the store has none yet.
func (c *Config) PaymentSettingDefaults() entities.PaymentSetting {
	statuses := make([]entities.PaymentStatus, 0, len(c.Gateway.PendingStatusCodes))
	for _, code := range c.Gateway.PendingStatusCodes {
		statuses = append(statuses, entities.PaymentStatus(code))
	}
	return entities.PaymentSetting{
		StoreID:                  c.Store.ID,
		AccountEmail:             c.Gateway.AccountEmail,
		AccountToken:             c.Gateway.AccountToken,
		PaymentMethodDescription: c.Gateway.PaymentMethodDescription,
		PaymentMethodSystemName:  c.Gateway.PaymentMethodSystemName,
		SettlementCurrencyCode:   strings.ToUpper(c.Gateway.SettlementCurrency),
		PendingStatuses:          statuses,
		TieBreak:                 entities.TieBreak(strings.ToLower(c.Gateway.TransactionTieBreak)),
	}
}
