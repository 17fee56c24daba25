package engine

import (
	"math"
	"strconv"
	"strings"
)

// Apply returns the state that follows s after a. It is total and pure:
// input the engine cannot act on yields s unchanged.
func Apply(s State, a Action) State {
	if s.IsError() {
		return applyOnError(s, a)
	}

	switch a.Kind {
	case ActionDigit:
		return enterDigit(s, a.Digit)
	case ActionDecimalPoint:
		return enterDecimalPoint(s)
	case ActionClear:
		return InitialState()
	case ActionDelete:
		return deleteLast(s)
	case ActionSelectOperation:
		return selectOperation(s, a.Operation)
	case ActionEvaluate:
		return State{Operand1: evaluate(s)}
	case ActionToggleSign:
		return editOperand(s, toggleSign)
	case ActionPercentage:
		return editOperand(s, percent)
	default:
		return s
	}
}

// ApplyAll folds actions into s in order.
func ApplyAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = Apply(s, a)
	}
	return s
}

// applyOnError keeps the division-by-zero sentinel on screen until the user
// clears it. Delete removes the whole sentinel in one press instead of
// erasing it character by character, so no partial "Erro" state can exist.
func applyOnError(s State, a Action) State {
	switch a.Kind {
	case ActionClear, ActionDelete:
		return InitialState()
	default:
		return s
	}
}

func enterDigit(s State, d int) State {
	if d < 0 || d > 9 {
		return s
	}
	return editActive(s, func(operand string) string {
		if digitCount(operand) >= MaxDigits {
			return operand
		}
		return operand + strconv.Itoa(d)
	})
}

func enterDecimalPoint(s State) State {
	return editActive(s, func(operand string) string {
		if strings.Contains(operand, ".") || digitCount(operand) == 0 || digitCount(operand) >= MaxDigits {
			return operand
		}
		return operand + "."
	})
}

// editActive rewrites the operand that receives typing: operand2 once an
// operation is pending, operand1 before.
func editActive(s State, edit func(string) string) State {
	if s.HasOperation() {
		s.Operand2 = edit(s.Operand2)
	} else {
		s.Operand1 = edit(s.Operand1)
	}
	return s
}

// editOperand rewrites operand2 if it holds anything, else operand1. With an
// operation pending and operand2 still empty this edits operand1.
func editOperand(s State, edit func(string) string) State {
	switch {
	case s.Operand2 != "":
		s.Operand2 = edit(s.Operand2)
	case s.Operand1 != "":
		s.Operand1 = edit(s.Operand1)
	}
	return s
}

func deleteLast(s State) State {
	switch {
	case s.Operand2 != "":
		s.Operand2 = dropLast(s.Operand2)
	case s.HasOperation():
		s.Operation = NoOperation
	case s.Operand1 != "":
		s.Operand1 = dropLast(s.Operand1)
	}
	return s
}

func selectOperation(s State, op Operation) State {
	if !op.Valid() || s.Operand1 == "" {
		return s
	}
	if s.Operand2 != "" {
		result := evaluate(s)
		if result == ErrorValue {
			// The requested operation is dropped: Error is terminal and
			// must not carry a pending operation into the next input.
			return State{Operand1: ErrorValue}
		}
		return State{Operand1: result, Operation: op}
	}
	s.Operation = op
	return s
}

// evaluate computes operand1 <op> operand2. When either side does not parse
// or no operation is pending the result is operand1 as typed.
func evaluate(s State) string {
	a, okA := parseOperand(s.Operand1)
	b, okB := parseOperand(s.Operand2)
	if !okA || !okB || !s.HasOperation() {
		return s.Operand1
	}

	var result float64
	switch s.Operation {
	case Add:
		result = a + b
	case Subtract:
		result = a - b
	case Multiply:
		result = a * b
	case Divide:
		if b == 0 {
			return ErrorValue
		}
		result = a / b
	default:
		return s.Operand1
	}
	return Format(result)
}

func toggleSign(operand string) string {
	if strings.HasPrefix(operand, "-") {
		return operand[1:]
	}
	if operand == "" || operand == "0" {
		return operand
	}
	return "-" + operand
}

func percent(operand string) string {
	v, ok := parseOperand(operand)
	if !ok {
		return operand
	}
	return Format(v / 100)
}

// parseOperand accepts typed operands ("12.", "-0.5") and formatted results,
// including scientific notation.
func parseOperand(operand string) (float64, bool) {
	if operand == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(operand, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func digitCount(operand string) int {
	return len(strings.TrimPrefix(operand, "-"))
}

func dropLast(operand string) string {
	if operand == "" {
		return operand
	}
	return operand[:len(operand)-1]
}
