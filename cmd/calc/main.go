package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"go-chi-calculator/internal/engine"
	"go-chi-calculator/internal/mcptools"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "calc",
		Short:         "Keypad calculator",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zapcore.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("parse --log-level: %w", err)
			}
			return observability.InitLogger(level)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.SyncLogger()
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newEvalCmd(), newREPLCmd(), newMCPCmd())
	return root
}

func newEvalCmd() *cobra.Command {
	var showExpression bool

	cmd := &cobra.Command{
		Use:   "eval <keys>...",
		Short: "Apply keystrokes to a fresh calculator and print the display",
		Example: `  calc eval "12+3="
  calc eval 5 / 0 =`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := eval(strings.Join(args, ""))
			if err != nil {
				return err
			}
			if showExpression && state.CalculationDisplay() != "" {
				fmt.Fprintln(cmd.OutOrStdout(), state.CalculationDisplay())
			}
			fmt.Fprintln(cmd.OutOrStdout(), state.ResultDisplay())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showExpression, "expression", "e", false, "Also print the pending expression")
	return cmd
}

func newREPLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read keystroke lines from stdin and print both displays after each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the calculator as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := server.ServeStdio(mcptools.NewServer(session.NewStore())); err != nil {
				return fmt.Errorf("serve MCP: %w", err)
			}
			return nil
		},
	}
}

func eval(keys string) (engine.State, error) {
	actions, err := engine.ParseKeys(keys)
	if err != nil {
		return engine.State{}, err
	}
	return engine.ApplyAll(engine.InitialState(), actions...), nil
}
