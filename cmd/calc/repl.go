package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"go-chi-calculator/internal/engine"
	"go-chi-calculator/internal/observability"
)

const replHelp = `keys: 0-9 . + - * / = %  C clear  < delete  ~ toggle sign  q quit`

// runREPL owns the single current state and reassigns it after every line.
func runREPL(in io.Reader, out io.Writer) error {
	state := engine.InitialState()
	fmt.Fprintln(out, replHelp)
	printState(out, state)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "q" || line == "quit" {
			return nil
		}

		actions, err := engine.ParseKeys(line)
		if err != nil {
			observability.Logger.Debug("rejected keys", zap.String("line", line), zap.Error(err))
			fmt.Fprintf(out, "! %v\n", err)
			continue
		}

		state = engine.ApplyAll(state, actions...)
		printState(out, state)
	}
	return scanner.Err()
}

func printState(out io.Writer, s engine.State) {
	fmt.Fprintf(out, "%15s\n%15s\n", s.CalculationDisplay(), s.ResultDisplay())
}
