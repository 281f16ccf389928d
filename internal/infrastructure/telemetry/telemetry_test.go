package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
)

func TestInitMeterProvider_ExposesMetrics(t *testing.T) {
	handler, shutdown, err := InitMeterProvider("payment-gateway-test", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	counter, err := otel.Meter("test").Int64Counter("reconcile.orders.marked_paid")
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	counter.Add(context.Background(), 2)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "reconcile_orders_marked_paid") {
		t.Fatalf("expected counter in output")
	}
}

func TestInitTracerProvider_WithoutExporter(t *testing.T) {
	shutdown, err := InitTracerProvider(context.Background(), "payment-gateway-test", "test", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, span := otel.Tracer("test").Start(context.Background(), "op")
	if !span.SpanContext().IsValid() {
		t.Fatalf("expected a recording span")
	}
	span.End()
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
