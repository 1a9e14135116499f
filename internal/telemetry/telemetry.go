package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const (
	ServiceName    = "go-tictactoe"
	ServiceVersion = "v0.1.0"
)

// Init installs global OpenTelemetry providers for traces, metrics and logs,
// all of them exporting JSON to 'w'. The returned function flushes and shuts
// the providers down.
func Init(w io.Writer) (func(context.Context) error, error) {
	// --- Create shared resource ---
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	// --- Setup Traces ---
	traceExporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)

	// --- Setup Metrics ---
	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout metric exporter: %w", err)
	}

	mp := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(metricExporter)),
		metric.WithResource(res),
	)

	// --- Setup Logs ---
	logExporter, err := stdoutlog.New(stdoutlog.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout log exporter: %w", err)
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	global.SetLoggerProvider(lp)

	// --- Set Propagators ---
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	// --- Shutdown function ---
	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		var errs []error
		if err := tp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown TracerProvider: %w", err))
		}
		if err := mp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown MeterProvider: %w", err))
		}
		if err := lp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown LoggerProvider: %w", err))
		}
		return errors.Join(errs...)
	}

	return shutdown, nil
}

// InitFile is Init writing to the file at 'path', truncated first,
// or to stderr when 'path' is empty. Shutdown also closes the file.
func InitFile(path string) (func(context.Context) error, error) {
	if path == "" {
		return Init(os.Stderr)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open telemetry output: %w", err)
	}

	shutdown, err := Init(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	return func(ctx context.Context) error {
		return errors.Join(shutdown(ctx), file.Close())
	}, nil
}

// Setup runs InitFile when 'enabled', the returned func flushes the
// providers and logs a failed shutdown. It is a no-op when disabled.
func Setup(enabled bool, output string, log *slog.Logger) (func(), error) {
	if !enabled {
		return func() {}, nil
	}

	shutdown, err := InitFile(output)
	if err != nil {
		return nil, fmt.Errorf("failed to init telemetry: %w", err)
	}

	return func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error("telemetry shutdown failed", "err", err)
		}
	}, nil
}
