package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Options describes the tracing setup for one process.
type Options struct {
	// Endpoint is the OTLP/HTTP collector URL. Empty disables tracing.
	Endpoint       string
	ServiceName    string
	ServiceVersion string
	// SampleRatio is the fraction of root traces kept, in [0, 1].
	SampleRatio float64
}

// Sampler samples root spans by SampleRatio and follows the parent otherwise.
func (o Options) Sampler() (sdktrace.Sampler, error) {
	if o.SampleRatio < 0 || o.SampleRatio > 1 {
		return nil, fmt.Errorf("sample ratio must be within [0, 1], got %v", o.SampleRatio)
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(o.SampleRatio)), nil
}

// Setup initialises OpenTelemetry tracing. With an empty endpoint it returns
// a no-op shutdown function and leaves the global provider alone.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if opts.Endpoint == "" {
		return noop, nil
	}

	sampler, err := opts.Sampler()
	if err != nil {
		return noop, err
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(opts.Endpoint))
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(opts.ServiceName),
			semconv.ServiceVersion(opts.ServiceVersion),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
