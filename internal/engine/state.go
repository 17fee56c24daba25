package engine

import "strings"

const (
	// MaxDigits bounds the numeric content of an operand, sign excluded.
	MaxDigits = 10
	// MaxDisplayLength is the longest formatted result before switching to
	// scientific notation.
	MaxDisplayLength = 15
	// ErrorValue replaces operand1 after a division by zero.
	ErrorValue = "Error"
)

// State is the calculator snapshot. Operand2 is non-empty only while
// Operation is set.
type State struct {
	Operand1  string
	Operand2  string
	Operation Operation
}

// InitialState returns the all-defaults state.
func InitialState() State {
	return State{}
}

// HasOperation reports whether a binary operation is pending.
func (s State) HasOperation() bool {
	return s.Operation != NoOperation
}

// IsError reports whether the state shows the division-by-zero sentinel.
func (s State) IsError() bool {
	return s.Operand1 == ErrorValue
}

// CalculationDisplay is the pending expression, "<operand1> <symbol>", or ""
// when no operation is pending.
func (s State) CalculationDisplay() string {
	if !s.HasOperation() {
		return ""
	}
	return s.Operand1 + " " + s.Operation.Symbol()
}

// ResultDisplay is the primary readout.
func (s State) ResultDisplay() string {
	switch {
	case s.Operand2 != "":
		return s.Operand2
	case s.Operand1 != "":
		return s.Operand1
	default:
		return "0"
	}
}

// ValidOperand reports whether s could sit in an operand slot: something the
// keypad could have typed, or any result Format can emit.
func ValidOperand(s string) bool {
	return typedOperand(s) || formattedResult(s)
}

// typedOperand accepts empty, or an optional "-", digits, and at most one "."
// after the first digit, within MaxDigits.
func typedOperand(s string) bool {
	body := strings.TrimPrefix(s, "-")
	if len(body) > MaxDigits {
		return false
	}
	if body == "" {
		return true
	}
	if body[0] == '.' {
		return false
	}
	dots := 0
	for _, r := range body {
		switch {
		case r == '.':
			dots++
		case r < '0' || r > '9':
			return false
		}
	}
	return dots <= 1
}

func formattedResult(s string) bool {
	v, ok := parseOperand(s)
	return ok && Format(v) == s
}
