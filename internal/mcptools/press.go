package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"go-chi-calculator/internal/engine"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/session"
)

// PressTool types keystrokes into a calculator session
type PressTool struct {
	store *session.Store
}

// NewPressTool creates a new keystroke tool
func NewPressTool(store *session.Store) *PressTool {
	return &PressTool{store: store}
}

// GetTool returns the MCP tool definition
func (t *PressTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPress,
		mcp.WithDescription("Press calculator keys. Digits, '.', '+', '-', '*', '/', '=', '%', 'C' (clear), '<' (delete) and '~' (toggle sign). Omit session to start a new one."),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Keystrokes to apply in order, e.g. \"12+3=\"")),
		mcp.WithString("session", mcp.Description("Session ID returned by a previous call")),
	)
}

// Handle processes the tool request
func (t *PressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := mcp.ParseString(req, "keys", "")
	if keys == "" {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	actions, err := engine.ParseKeys(keys)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid keys: %v", err)), nil
	}

	id := mcp.ParseString(req, "session", "")
	if id == "" {
		id = t.store.Create().ID
	}

	applied, err := t.store.Apply(id, actions...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press keys: %v", err)), nil
	}

	observability.LoggerWithTrace(ctx).Debug("mcp keys applied",
		zap.String("session_id", id),
		zap.Int("actions", len(actions)),
		zap.String("result_display", applied.Session.State.ResultDisplay()),
	)

	return mcp.NewToolResultText(formatSession(applied.Session)), nil
}
