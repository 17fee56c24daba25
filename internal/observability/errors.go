package observability

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"go-chi-calculator/internal/handlers"
)

// ErrorReport describes a failed request.
type ErrorReport struct {
	Operation string
	Message   string
	Status    int
	Err       error
}

// RecordError centralises error handling across all domains: records the error
// on the span in ctx, increments counter, logs with trace context, and writes
// a JSON error response.
func RecordError(ctx context.Context, w http.ResponseWriter, counter metric.Int64Counter, report ErrorReport) {
	span := trace.SpanFromContext(ctx)
	span.RecordError(report.Err)
	span.SetStatus(codes.Error, report.Message)

	if counter != nil {
		counter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", report.Operation)))
	}

	LoggerWithTrace(ctx).Error(report.Message,
		zap.String("operation", report.Operation),
		zap.Int("status", report.Status),
		zap.Error(report.Err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	)

	handlers.WriteError(w, report.Status, report.Message)
}
