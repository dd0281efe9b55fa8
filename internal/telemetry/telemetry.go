// Package telemetry sets up OpenTelemetry tracing. Export is opt-in: with no
// endpoint configured every tracer is a no-op.
package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Provider owns the process tracer provider.
type Provider struct {
	tp       trace.TracerProvider
	sdk      *sdktrace.TracerProvider // nil when disabled
	endpoint string
}

// Setup creates a provider exporting over OTLP/HTTP to endpoint. An empty
// endpoint yields a disabled provider.
func Setup(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		return &Provider{tp: noop.NewTracerProvider()}, nil
	}

	opts := []otlptracehttp.Option{}
	if strings.Contains(endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	if serviceName == "" {
		serviceName = "devhub"
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	sdk := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{tp: sdk, sdk: sdk, endpoint: endpoint}, nil
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool { return p.sdk != nil }

// Endpoint returns the configured collector endpoint.
func (p *Provider) Endpoint() string { return p.endpoint }

// Tracer returns a named tracer.
func (p *Provider) Tracer(name string) trace.Tracer {
	return p.tp.Tracer(name)
}

// Install makes p the global provider so otel.Tracer picks it up.
func (p *Provider) Install() {
	otel.SetTracerProvider(p.tp)
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
