// Package telemetry installs an OTLP/HTTP tracer provider and exposes the
// instrumented HTTP plumbing used for inbound and outbound calls.
package telemetry

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init registers a global tracer provider exporting to endpoint (host:port).
// An empty endpoint leaves the global no-op provider in place.
func Init(ctx context.Context, endpoint, serviceName, env string) (ShutdownFunc, error) {
	if endpoint == "" {
		return noopShutdown, nil
	}

	log.Printf("[telemetry] exporting traces to %s", endpoint)

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			attribute.String("environment", env),
		)),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// HTTPClient returns a client whose transport records a span per request.
func HTTPClient() *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// Middleware wraps inbound handlers with a server span named operation.
func Middleware(operation string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, operation)
	}
}
