// Package engine holds the calculator input/evaluation state machine.
//
// A State is an immutable snapshot of what the user has typed so far: two
// operands kept as raw decimal text and an optional pending binary operation.
// Apply folds one Action into a State and returns the next State. It never
// fails and never mutates its input; malformed or redundant input leaves the
// state unchanged, and division by zero is encoded as the ErrorValue operand.
//
// Hosts (HTTP sessions, the CLI, the MCP server) own the single mutable slot
// holding the current State and reassign it after every call.
package engine
