package telemetry

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

// InitMeterProvider installs a Prometheus-backed global meter provider and returns
// the /metrics handler.
func InitMeterProvider(serviceName, serviceVersion string) (http.Handler, func(context.Context) error, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, nil, err
	}

	mp := metric.NewMeterProvider(
		metric.WithReader(exporter),
		metric.WithResource(newResource(serviceName, serviceVersion)),
	)
	otel.SetMeterProvider(mp)

	return promhttp.Handler(), mp.Shutdown, nil
}
