// Package telemetry wires a real OpenTelemetry TracerProvider for the
// -I instrumentation flag. When instrumentation is disabled, Init
// hands back the global no-op tracer and does no setup at all.
package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ShutdownFunc flushes and stops the TracerProvider started by Init.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init returns a Tracer named "ratsim" and a ShutdownFunc to call
// before process exit. With enabled false it returns the package-level
// no-op tracer so instrument.Tracker's Start/Finish calls stay free of
// any export machinery.
func Init(enabled bool, out io.Writer) (trace.Tracer, ShutdownFunc, error) {
	if !enabled {
		return noop.NewTracerProvider().Tracer("ratsim"), noopShutdown, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(out), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, noopShutdown, err
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))

	return tp.Tracer("ratsim"), func(ctx context.Context) error {
		return tp.Shutdown(ctx)
	}, nil
}
