// Package telemetry provides OpenTelemetry tracing over OTLP/HTTP.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "coinrush"
	serviceVersion = "0.2.0"
)

// Config selects the OTLP collector. An empty Endpoint disables export.
type Config struct {
	Endpoint string // e.g. https://api.honeycomb.io
	Headers  string // OTEL_EXPORTER_OTLP_HEADERS syntax: k1=v1,k2=v2
}

// ConfigFromEnv reads COINRUSH_OTLP_ENDPOINT and COINRUSH_OTLP_HEADERS.
func ConfigFromEnv() Config {
	return Config{
		Endpoint: os.Getenv("COINRUSH_OTLP_ENDPOINT"),
		Headers:  os.Getenv("COINRUSH_OTLP_HEADERS"),
	}
}

// Enabled reports whether traces should be exported.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter and registers it as the
// global provider. The exporter reads the standard OTEL_* variables, which are set
// from cfg before it is created.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Endpoint)
	if cfg.Headers != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", cfg.Headers)
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Own resource rather than merging with Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component. Without Setup it is the
// global no-op tracer.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("coinrush/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
