package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"go-chi-calculator/internal/engine"
	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/session"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Handler serves the calculator endpoints on top of a session store.
type Handler struct {
	store *session.Store
}

func NewHandler(store *session.Store) *Handler {
	return &Handler{store: store}
}

// ---------------------------------------------------------------------------
// Handlers — sessions
// ---------------------------------------------------------------------------

// CreateSession handles POST /calculator/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "calculator.session.create")
	defer span.End()

	sess := h.store.Create()
	span.SetAttributes(attribute.String("calculator.session.id", sess.ID))

	observability.LoggerWithTrace(ctx).Info("calculator session created",
		zap.String("session_id", sess.ID),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	handlers.WriteJSON(w, http.StatusCreated, newSessionResponse(sess))
}

// GetSession handles GET /calculator/sessions/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx, span := tracer.Start(r.Context(), "calculator.session.get",
		trace.WithAttributes(attribute.String("calculator.session.id", id)),
	)
	defer span.End()

	sess, err := h.store.Get(id)
	if err != nil {
		recordSessionError(ctx, w, "get", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, newSessionResponse(sess))
}

// DeleteSession handles DELETE /calculator/sessions/{id}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx, span := tracer.Start(r.Context(), "calculator.session.delete",
		trace.WithAttributes(attribute.String("calculator.session.id", id)),
	)
	defer span.End()

	if err := h.store.Delete(id); err != nil {
		recordSessionError(ctx, w, "delete", err)
		return
	}

	observability.LoggerWithTrace(ctx).Info("calculator session deleted",
		zap.String("session_id", id),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	w.WriteHeader(http.StatusNoContent)
}

// ApplyActions handles POST /calculator/sessions/{id}/actions. It applies a
// batch of actions to the session, creating a child span for every step.
func (h *Handler) ApplyActions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	requestID := observability.RequestIDFromContext(r.Context())

	// Parent span for the whole batch
	ctx, span := tracer.Start(r.Context(), "calculator.actions",
		trace.WithAttributes(
			attribute.String("calculator.session.id", id),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()
	logger := observability.LoggerWithTrace(ctx)

	var req ActionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		recordBadRequest(ctx, w, "actions", "invalid request body", err)
		return
	}

	actions, err := decodeActions(req)
	if err != nil {
		recordBadRequest(ctx, w, "actions", err.Error(), err)
		return
	}
	if len(actions) == 0 {
		recordBadRequest(ctx, w, "actions", "no actions provided", errors.New("actions and keys are empty"))
		return
	}

	start := time.Now()
	applied, err := h.store.Apply(id, actions...)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms
	if err != nil {
		recordSessionError(ctx, w, "actions", err)
		return
	}
	sess := applied.Session

	results := make([]StepResult, 0, len(applied.Steps))
	prev := applied.Previous
	for i, state := range applied.Steps {
		a := actions[i]

		// --- Child span per step ---
		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.actions.step.%d.%s", i, a.Kind),
			trace.WithAttributes(
				attribute.Int("calculator.step.index", i),
				attribute.String("calculator.step.action", a.Kind.String()),
				attribute.String("calculator.step.input", prev.ResultDisplay()),
			),
		)
		stepSpan.SetAttributes(attribute.String("calculator.step.result", state.ResultDisplay()))
		if state.IsError() && !prev.IsError() {
			stepSpan.AddEvent("division_by_zero")
			errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", "division_by_zero")))
		}
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		actionsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("action", a.Kind.String())))

		results = append(results, StepResult{
			Action:             a.String(),
			CalculationDisplay: state.CalculationDisplay(),
			ResultDisplay:      state.ResultDisplay(),
		})
		prev = state
	}

	actionDuration.Record(ctx, elapsed)

	span.AddEvent("actions.complete", trace.WithAttributes(
		attribute.String("result_display", sess.State.ResultDisplay()),
		attribute.Int("total_steps", len(actions)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator actions applied",
		zap.String("session_id", id),
		zap.Int("actions", len(actions)),
		zap.String("calculation_display", sess.State.CalculationDisplay()),
		zap.String("result_display", sess.State.ResultDisplay()),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	resp := newSessionResponse(sess)
	resp.Steps = results
	handlers.WriteJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Handler — stateless evaluation
// ---------------------------------------------------------------------------

// Evaluate handles POST /calculator/evaluate. It runs one binary expression
// through the engine without a session.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	requestID := observability.RequestIDFromContext(r.Context())

	ctx, span := tracer.Start(r.Context(), "calculator.evaluate",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()
	logger := observability.LoggerWithTrace(ctx)

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		recordBadRequest(ctx, w, "evaluate", "invalid request body", err)
		return
	}

	op, ok := engine.ParseOperation(req.Operation)
	if !ok {
		recordBadRequest(ctx, w, "evaluate", "unknown operation", fmt.Errorf("operation %q", req.Operation))
		return
	}
	if req.Operand1 == "" || !engine.ValidOperand(req.Operand1) || !engine.ValidOperand(req.Operand2) {
		recordBadRequest(ctx, w, "evaluate", "invalid operand", fmt.Errorf("operand1=%q operand2=%q", req.Operand1, req.Operand2))
		return
	}

	span.SetAttributes(
		attribute.String("calculator.operation", op.String()),
		attribute.String("calculator.operand1", req.Operand1),
		attribute.String("calculator.operand2", req.Operand2),
	)

	state := engine.Apply(engine.State{Operand1: req.Operand1}, engine.SelectOperation(op))
	state.Operand2 = req.Operand2
	result := engine.Apply(state, engine.Evaluate())

	actionsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("action", engine.ActionEvaluate.String())))

	if result.IsError() {
		span.AddEvent("division_by_zero")
		errorCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", op.String()),
			attribute.String("reason", "division_by_zero"),
		))
	}

	span.SetAttributes(attribute.String("calculator.result", result.Operand1))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator expression evaluated",
		zap.String("operation", op.String()),
		zap.String("operand1", req.Operand1),
		zap.String("operand2", req.Operand2),
		zap.String("result", result.Operand1),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, EvaluateResponse{
		Operation: op.String(),
		Operand1:  req.Operand1,
		Operand2:  req.Operand2,
		Result:    result.Operand1,
	})
}
