// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "skirmish"
	serviceVersion = "0.1.0"
)

// Config controls where traces are exported.
type Config struct {
	APIKey   string `env:"HONEYCOMB_SKIRMISH_API_KEY"`
	Dataset  string `env:"HONEYCOMB_SKIRMISH_DATASET"  envDefault:"skirmish"`
	Endpoint string `env:"HONEYCOMB_SKIRMISH_ENDPOINT" envDefault:"https://api.honeycomb.io"`
	Disabled bool   `env:"SKIRMISH_TELEMETRY_DISABLED"`
}

// LoadConfig reads the telemetry configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse telemetry env: %w", err)
	}
	return cfg, nil
}

// Enabled reports whether traces should be exported at all. Without an API
// key there is nowhere to send them.
func (c Config) Enabled() bool {
	return !c.Disabled && c.APIKey != ""
}

// Headers returns the Honeycomb authentication headers.
func (c Config) Headers() map[string]string {
	return map[string]string{
		"x-honeycomb-team":    c.APIKey,
		"x-honeycomb-dataset": c.Dataset,
	}
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter pointed at
// cfg.Endpoint. When cfg is not enabled it installs nothing and the global
// no-op provider stays in place.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if !cfg.Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
		otlptracehttp.WithHeaders(cfg.Headers()),
	)
	if err != nil {
		return nil, err
	}

	// Build resource with service information
	// We create our own resource without merging with Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	// Create trace provider with batch span processor
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
// Use this to create spans within different parts of the application.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
