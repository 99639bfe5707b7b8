// Package trace sets up OpenTelemetry tracing for recipemaker.
package trace

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// EndpointEnv enables OTLP export when set (host:port).
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the reported service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	defaultServiceName  = "recipemaker"
	instrumentationName = "recipemaker/webhook"
)

// Provider owns the tracer used for webhook requests.
type Provider struct {
	sdk    *sdktrace.TracerProvider // nil when disabled
	tracer oteltrace.Tracer
}

// NewProvider creates an OTLP/HTTP exporting provider if
// OTEL_EXPORTER_OTLP_ENDPOINT is set, and a no-op provider otherwise.
// It also installs the W3C trace-context propagator globally.
func NewProvider(ctx context.Context) (*Provider, error) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	endpoint := strings.TrimSpace(os.Getenv(EndpointEnv))
	if endpoint == "" {
		return Disabled(), nil
	}
	endpoint = strings.TrimPrefix(strings.TrimPrefix(endpoint, "http://"), "https://")

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	return NewProviderWithOptions(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

// NewProviderWithOptions builds an SDK-backed provider from raw options.
// Tests use it with an in-memory span recorder.
func NewProviderWithOptions(opts ...sdktrace.TracerProviderOption) *Provider {
	sdk := sdktrace.NewTracerProvider(opts...)
	return &Provider{sdk: sdk, tracer: sdk.Tracer(instrumentationName)}
}

// Disabled returns a provider whose tracer records nothing.
func Disabled() *Provider {
	return &Provider{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.sdk != nil
}

// Tracer returns the webhook tracer. Safe on a nil Provider.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return Disabled().tracer
	}
	return p.tracer
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
