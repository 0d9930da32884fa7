// Package telemetry installs the OTLP trace exporter when an endpoint is set.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/back-informatica/chamados/internal/shared/config"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

type ShutdownFunc func(context.Context) error

func noop(context.Context) error { return nil }

// Setup returns a no-op shutdown when tracing is off or the exporter cannot
// be built; tracing problems never stop the server.
func Setup(ctx context.Context, cfg *config.TelemetryConfig, log logger.Interface) ShutdownFunc {
	if cfg.OTLPEndpoint == "" {
		log.Debugw("tracing disabled, no otlp endpoint configured")
		return noop
	}

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		log.Warnw("tracing disabled", "error", err)
		return noop
	}

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Infow("tracing enabled", "endpoint", cfg.OTLPEndpoint, "service", cfg.ServiceName)
	return provider.Shutdown
}

func newProvider(ctx context.Context, cfg *config.TelemetryConfig) (*sdktrace.TracerProvider, error) {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	name := cfg.ServiceName
	if name == "" {
		name = "chamados"
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to build otel resource: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}
