package main

import (
	"context"
	"errors"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/session"
)

// initTelemetry starts the OTLP trace, log and metric pipelines unless
// telemetry is disabled. The returned function shuts all of them down.
func initTelemetry(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	if cfg.TelemetryDisabled {
		observability.Logger.Info("telemetry disabled")
		return func(context.Context) error { return nil }, nil
	}

	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	for _, start := range []func(context.Context, string) (func(context.Context) error, error){
		observability.InitTracing,
		observability.InitLogging,
		observability.InitMetrics,
	} {
		stop, err := start(ctx, cfg.ServiceName)
		if err != nil {
			_ = shutdown(ctx)
			return nil, err
		}
		shutdowns = append(shutdowns, stop)
	}

	return shutdown, nil
}

// initMetrics registers application-specific metric instruments. Add new
// domain InitMetrics calls here as the project grows.
func initMetrics(store *session.Store) error {
	if err := calculator.InitMetrics(); err != nil {
		return err
	}

	return calculator.RegisterSessionMetrics(store)
}
