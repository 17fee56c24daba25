package calculator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go-chi-calculator/internal/engine"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/session"
)

func decodeAction(req ActionRequest) (engine.Action, error) {
	kind, ok := engine.ParseActionKind(req.Type)
	if !ok {
		return engine.Action{}, fmt.Errorf("unknown action type %q", req.Type)
	}

	switch kind {
	case engine.ActionDigit:
		if req.Digit == nil || *req.Digit < 0 || *req.Digit > 9 {
			return engine.Action{}, errors.New("digit action requires a digit between 0 and 9")
		}
		return engine.EnterDigit(*req.Digit), nil
	case engine.ActionSelectOperation:
		op, ok := engine.ParseOperation(req.Operation)
		if !ok {
			return engine.Action{}, fmt.Errorf("unknown operation %q", req.Operation)
		}
		return engine.SelectOperation(op), nil
	default:
		return engine.Action{Kind: kind}, nil
	}
}

// decodeActions returns the explicit actions followed by the parsed keys.
func decodeActions(req ActionsRequest) ([]engine.Action, error) {
	actions := make([]engine.Action, 0, len(req.Actions)+len(req.Keys))
	for i, ar := range req.Actions {
		a, err := decodeAction(ar)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, a)
	}

	keyed, err := engine.ParseKeys(req.Keys)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return append(actions, keyed...), nil
}

func newSessionResponse(sess session.Session) SessionResponse {
	return SessionResponse{
		ID:                 sess.ID,
		Operand1:           sess.State.Operand1,
		Operand2:           sess.State.Operand2,
		Operation:          sess.State.Operation.String(),
		CalculationDisplay: sess.State.CalculationDisplay(),
		ResultDisplay:      sess.State.ResultDisplay(),
	}
}

func recordBadRequest(ctx context.Context, w http.ResponseWriter, opName, msg string, err error) {
	observability.RecordError(ctx, w, errorCounter, observability.ErrorReport{
		Operation: opName,
		Message:   msg,
		Status:    http.StatusBadRequest,
		Err:       err,
	})
}

func recordSessionError(ctx context.Context, w http.ResponseWriter, opName string, err error) {
	status := http.StatusInternalServerError
	msg := "session lookup failed"
	if errors.Is(err, session.ErrSessionNotFound) {
		status = http.StatusNotFound
		msg = err.Error()
	}
	observability.RecordError(ctx, w, errorCounter, observability.ErrorReport{
		Operation: opName,
		Message:   msg,
		Status:    status,
		Err:       err,
	})
}
