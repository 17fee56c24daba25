package engine

// ActionKind tags the variant carried by an Action.
type ActionKind int

const (
	ActionDigit ActionKind = iota
	ActionDecimalPoint
	ActionClear
	ActionDelete
	ActionToggleSign
	ActionPercentage
	ActionSelectOperation
	ActionEvaluate
)

var actionKindNames = map[ActionKind]string{
	ActionDigit:           "digit",
	ActionDecimalPoint:    "decimal_point",
	ActionClear:           "clear",
	ActionDelete:          "delete",
	ActionToggleSign:      "toggle_sign",
	ActionPercentage:      "percentage",
	ActionSelectOperation: "operation",
	ActionEvaluate:        "evaluate",
}

// String returns the wire name of the kind.
func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseActionKind is the inverse of ActionKind.String.
func ParseActionKind(s string) (ActionKind, bool) {
	for k, name := range actionKindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Action is one user intent. Digit is only meaningful for ActionDigit and
// Operation only for ActionSelectOperation.
type Action struct {
	Kind      ActionKind
	Digit     int
	Operation Operation
}

// EnterDigit types the digit d (0-9).
func EnterDigit(d int) Action {
	return Action{Kind: ActionDigit, Digit: d}
}

// EnterDecimalPoint types ".".
func EnterDecimalPoint() Action {
	return Action{Kind: ActionDecimalPoint}
}

// Clear resets to InitialState.
func Clear() Action {
	return Action{Kind: ActionClear}
}

// Delete removes the most recent input.
func Delete() Action {
	return Action{Kind: ActionDelete}
}

// ToggleSign negates the active operand.
func ToggleSign() Action {
	return Action{Kind: ActionToggleSign}
}

// Percentage divides the active operand by 100.
func Percentage() Action {
	return Action{Kind: ActionPercentage}
}

// SelectOperation sets the pending operation, folding any complete expression first.
func SelectOperation(op Operation) Action {
	return Action{Kind: ActionSelectOperation, Operation: op}
}

// Evaluate computes the pending expression.
func Evaluate() Action {
	return Action{Kind: ActionEvaluate}
}

// String renders the action the way the keypad would type it.
func (a Action) String() string {
	switch a.Kind {
	case ActionDigit:
		if a.Digit >= 0 && a.Digit <= 9 {
			return string(rune('0' + a.Digit))
		}
		return "?"
	case ActionDecimalPoint:
		return "."
	case ActionClear:
		return "C"
	case ActionDelete:
		return "<"
	case ActionToggleSign:
		return "±"
	case ActionPercentage:
		return "%"
	case ActionSelectOperation:
		return a.Operation.Symbol()
	case ActionEvaluate:
		return "="
	default:
		return "?"
	}
}
