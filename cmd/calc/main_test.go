package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go-chi-calculator/internal/engine"
)

func TestEval(t *testing.T) {
	state, err := eval("2+3*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Operand1 != "5" || state.Operation != engine.Multiply {
		t.Fatalf("expected 5 ×, got %+v", state)
	}

	if _, err := eval("2^3"); !errors.Is(err, engine.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestEvalCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"eval", "-e", "12", "+", "3"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := out.String(), "12 +\n3\n"; got != want {
		t.Fatalf("expected output %q, got %q", want, got)
	}
}

func TestRunREPL(t *testing.T) {
	in := strings.NewReader("5/\n0=\n??\nC\nq\n9\n")
	var out bytes.Buffer

	if err := runREPL(in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	var displays []string
	for _, line := range lines[1:] {
		displays = append(displays, strings.TrimSpace(line))
	}

	want := []string{
		"", "0",
		"5 ÷", "5",
		"", "Error",
		"! unknown key '?' at offset 0",
		"", "0",
	}
	if strings.Join(displays, "|") != strings.Join(want, "|") {
		t.Fatalf("expected displays %q, got %q", want, displays)
	}
}
