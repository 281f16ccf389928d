//go:build integration

package app

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"payment_gateway/internal/adapter/persistence/host"
	"payment_gateway/internal/config"
	"payment_gateway/internal/domain/entities"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func startDynamoDBLocal(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "amazon/dynamodb-local:2.5.2",
			ExposedPorts: []string{"8000/tcp"},
			WaitingFor:   wait.ForListeningPort("8000/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start dynamodb container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate dynamodb container: %v", err)
		}
	})

	endpoint, err := container.PortEndpoint(ctx, "8000/tcp", "http")
	if err != nil {
		t.Fatalf("failed to get dynamodb endpoint: %v", err)
	}
	return endpoint
}

func seedHostDB(t *testing.T, dsn string) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(host.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	stmts := []string{
		`INSERT INTO currencies (id, currency_code, name, rate) VALUES (1, 'BRL', 'Real', 1)`,
		`INSERT INTO addresses (id, first_name, last_name, email, city, address1, address2, zip_postal_code) VALUES (1, 'Maria', 'Silva', 'maria@example.com', 'Campinas', 'Rua A, 1', '', '13010-000')`,
		`INSERT INTO customers (id, email, billing_address_id) VALUES (7, 'maria@example.com', 1)`,
		`INSERT INTO products (id, name, deleted) VALUES (1, 'Camiseta', false)`,
		`INSERT INTO orders (id, store_id, customer_id, payment_method_system_name, payment_status_id, order_status_id, order_shipping_incl_tax, order_total, deleted, created_on_utc) VALUES (42, 1, 7, 'Payments.PagSeguro', 10, 10, 5, 25, false, CURRENT_TIMESTAMP)`,
		`INSERT INTO order_items (id, order_id, product_id, quantity, unit_price_incl_tax) VALUES (1, 42, 1, 2, 10)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("seed %q: %v", stmt, err)
		}
	}
	sqlDB, _ := db.DB()
	_ = sqlDB.Close()
}

func TestApp_CheckoutAndReconcile_Integration(t *testing.T) {
	ctx := context.Background()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	dsn := "file:" + filepath.Join(t.TempDir(), "host.db")
	seedHostDB(t, dsn)

	cfg := &config.Config{
		Store: config.Store{ID: 1, PrimaryCurrency: "BRL"},
		Gateway: config.Gateway{
			AccountEmail:            "seller@loja.com.br",
			AccountToken:            "token-123",
			PaymentMethodSystemName: "Payments.PagSeguro",
			SettlementCurrency:      "BRL",
			PendingStatusCodes:      []int{10},
			RequestTimeout:          5 * time.Second,
			ReconcileConcurrency:    2,
			TransactionTieBreak:     "first",
		},
		AWS: config.AWS{Region: "us-east-1", AccessKeyID: "local", SecretAccessKey: "local"},
		DynamoDB: config.DynamoDB{
			Endpoint:           startDynamoDBLocal(ctx, t),
			RegistrationsTable: "payment_registrations",
			SettingsTable:      "payment_settings",
			AutoCreateTables:   true,
		},
		HostDB:    config.HostDB{Driver: "sqlite", DSN: dsn},
		Telemetry: config.Telemetry{ServiceName: "payment-gateway-test", ServiceVersion: "test"},
	}

	a, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() { a.Close(ctx) })

	reg, err := a.Payments.CreatePayment(ctx, 42)
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if reg.Status != entities.RegistrationStatusRegistered || !strings.Contains(reg.RedirectURL, "mock-42") {
		t.Fatalf("unexpected registration: %+v", reg)
	}
	if reg.Total.StringFixed(2) != "25.00" {
		t.Fatalf("expected total 25.00, got %s", reg.Total.StringFixed(2))
	}

	stored, err := a.Payments.ListByOrderID(ctx, 42)
	if err != nil || len(stored) != 1 {
		t.Fatalf("expected one stored registration, got %d err=%v", len(stored), err)
	}

	report, err := a.Reconciler.Reconcile(ctx)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if report.MarkedPaid != 1 {
		t.Fatalf("expected one order marked paid, got %+v", report)
	}

	again, err := a.Reconciler.Reconcile(ctx)
	if err != nil {
		t.Fatalf("second reconcile: %v", err)
	}
	if again.Candidates != 0 || again.MarkedPaid != 0 {
		t.Fatalf("expected nothing left to reconcile, got %+v", again)
	}
}

func TestApp_RefusesUnregisteredSettlementCurrency_Integration(t *testing.T) {
	ctx := context.Background()

	dsn := "file:" + filepath.Join(t.TempDir(), "host.db")
	seedHostDB(t, dsn)

	cfg := &config.Config{
		Store: config.Store{ID: 1, PrimaryCurrency: "BRL"},
		Gateway: config.Gateway{
			AccountEmail:            "seller@loja.com.br",
			AccountToken:            "token-123",
			PaymentMethodSystemName: "Payments.PagSeguro",
			SettlementCurrency:      "USD",
			PendingStatusCodes:      []int{10},
			RequestTimeout:          5 * time.Second,
			ReconcileConcurrency:    1,
		},
		AWS: config.AWS{Region: "us-east-1", AccessKeyID: "local", SecretAccessKey: "local"},
		DynamoDB: config.DynamoDB{
			Endpoint:           startDynamoDBLocal(ctx, t),
			RegistrationsTable: "payment_registrations",
			SettingsTable:      "payment_settings",
			AutoCreateTables:   true,
		},
		HostDB:    config.HostDB{Driver: "sqlite", DSN: dsn},
		Telemetry: config.Telemetry{ServiceName: "payment-gateway-test", ServiceVersion: "test"},
	}

	if _, err := New(ctx, cfg); err == nil {
		t.Fatalf("expected startup to fail")
	}
}
