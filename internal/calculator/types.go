package calculator

// ActionRequest is one user intent in JSON form.
type ActionRequest struct {
	Type      string `json:"type"`                // "digit", "decimal_point", "clear", "delete", "toggle_sign", "percentage", "operation", "evaluate"
	Digit     *int   `json:"digit,omitempty"`     // required for "digit"
	Operation string `json:"operation,omitempty"` // required for "operation": "add", "subtract", "multiply", "divide" or a symbol
}

// ActionsRequest is the JSON body for POST /calculator/sessions/{id}/actions.
// Keys are applied after Actions.
type ActionsRequest struct {
	Actions []ActionRequest `json:"actions"`
	Keys    string          `json:"keys,omitempty"`
}

// SessionResponse is the JSON response for all session endpoints.
type SessionResponse struct {
	ID                 string       `json:"id"`
	Operand1           string       `json:"operand1"`
	Operand2           string       `json:"operand2"`
	Operation          string       `json:"operation,omitempty"`
	CalculationDisplay string       `json:"calculation_display"`
	ResultDisplay      string       `json:"result_display"`
	Steps              []StepResult `json:"steps,omitempty"`
}

// StepResult records the displays after one applied action.
type StepResult struct {
	Action             string `json:"action"`
	CalculationDisplay string `json:"calculation_display"`
	ResultDisplay      string `json:"result_display"`
}

// EvaluateRequest is the JSON body for POST /calculator/evaluate.
type EvaluateRequest struct {
	Operand1  string `json:"operand1"`
	Operation string `json:"operation"`
	Operand2  string `json:"operand2"`
}

// EvaluateResponse is the JSON response for POST /calculator/evaluate.
type EvaluateResponse struct {
	Operation string `json:"operation"`
	Operand1  string `json:"operand1"`
	Operand2  string `json:"operand2"`
	Result    string `json:"result"`
}
