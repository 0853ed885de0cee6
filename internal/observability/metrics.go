// Package observability wires OpenTelemetry metrics and tracing for the
// server.
package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsCollector manages all metrics for the service.
type MetricsCollector struct {
	meter metric.Meter

	chatTurns     metric.Int64Counter
	chatLatency   metric.Float64Histogram
	httpRequests  metric.Int64Counter
	httpLatency   metric.Float64Histogram
	activeClients metric.Int64UpDownCounter
}

// NewMetricsCollector creates a metrics collector backed by a Prometheus
// exporter. When disabled, all record methods are no-ops.
func NewMetricsCollector(enabled bool) (*MetricsCollector, error) {
	if !enabled {
		return &MetricsCollector{}, nil
	}

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)
	meter := provider.Meter("saathi")

	chatTurns, err := meter.Int64Counter(
		"saathi.chat.turns.total",
		metric.WithDescription("Total chat turns processed"),
		metric.WithUnit("{turn}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create chat_turns counter: %w", err)
	}
	chatLatency, err := meter.Float64Histogram(
		"saathi.chat.latency",
		metric.WithDescription("Chat turn processing latency in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create chat_latency histogram: %w", err)
	}
	httpRequests, err := meter.Int64Counter(
		"saathi.http.requests.total",
		metric.WithDescription("Total HTTP requests served"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create http_requests counter: %w", err)
	}
	httpLatency, err := meter.Float64Histogram(
		"saathi.http.latency",
		metric.WithDescription("HTTP request latency in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create http_latency histogram: %w", err)
	}
	activeClients, err := meter.Int64UpDownCounter(
		"saathi.chat.ws.clients",
		metric.WithDescription("Connected websocket chat clients"),
		metric.WithUnit("{client}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create ws_clients gauge: %w", err)
	}

	return &MetricsCollector{
		meter:         meter,
		chatTurns:     chatTurns,
		chatLatency:   chatLatency,
		httpRequests:  httpRequests,
		httpLatency:   httpLatency,
		activeClients: activeClients,
	}, nil
}

// PrometheusHandler returns the /metrics scrape handler.
func (m *MetricsCollector) PrometheusHandler() http.Handler {
	return promclient.Handler()
}

// RecordChatTurn records one processed turn with its classified intent and
// detected language.
func (m *MetricsCollector) RecordChatTurn(ctx context.Context, intent, language string, actionPerformed bool, latency time.Duration) {
	if m == nil || m.chatTurns == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("intent", intent),
		attribute.String("language", language),
		attribute.Bool("action_performed", actionPerformed),
	}
	m.chatTurns.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.chatLatency.Record(ctx, latency.Seconds(), metric.WithAttributes(attrs...))
}

// RecordHTTPRequest records one served HTTP request.
func (m *MetricsCollector) RecordHTTPRequest(ctx context.Context, method, route string, status int, latency time.Duration) {
	if m == nil || m.httpRequests == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status", status),
	}
	m.httpRequests.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.httpLatency.Record(ctx, latency.Seconds(), metric.WithAttributes(attrs...))
}

// WSClientConnected adjusts the connected websocket client gauge.
func (m *MetricsCollector) WSClientConnected(ctx context.Context, delta int64) {
	if m == nil || m.activeClients == nil {
		return
	}
	m.activeClients.Add(ctx, delta)
}
