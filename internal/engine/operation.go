package engine

import "strings"

// Operation is a pending binary operator. The zero value means none is set.
type Operation int

const (
	NoOperation Operation = iota
	Add
	Subtract
	Multiply
	Divide
)

type operationInfo struct {
	symbol string
	name   string
}

var operations = map[Operation]operationInfo{
	Add:      {symbol: "+", name: "add"},
	Subtract: {symbol: "-", name: "subtract"},
	Multiply: {symbol: "×", name: "multiply"},
	Divide:   {symbol: "÷", name: "divide"},
}

// aliases accepted by ParseOperation on top of names and symbols.
var operationAliases = map[string]Operation{
	"*": Multiply,
	"x": Multiply,
	"/": Divide,
}

// Symbol returns the display symbol, or "" for NoOperation.
func (o Operation) Symbol() string {
	return operations[o].symbol
}

// String returns the wire name ("add", "subtract", ...), or "" for NoOperation.
func (o Operation) String() string {
	return operations[o].name
}

// Valid reports whether o is one of the four binary operators.
func (o Operation) Valid() bool {
	_, ok := operations[o]
	return ok
}

// ParseOperation resolves a wire name, a display symbol or a keyboard alias.
func ParseOperation(s string) (Operation, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for op, info := range operations {
		if s == info.name || s == info.symbol {
			return op, true
		}
	}
	op, ok := operationAliases[s]
	return op, ok
}
