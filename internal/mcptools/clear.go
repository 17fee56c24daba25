package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"go-chi-calculator/internal/engine"
	"go-chi-calculator/internal/session"
)

// ClearTool resets a calculator session
type ClearTool struct {
	store *session.Store
}

// NewClearTool creates a new clear tool
func NewClearTool(store *session.Store) *ClearTool {
	return &ClearTool{store: store}
}

// GetTool returns the MCP tool definition
func (t *ClearTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolClear,
		mcp.WithDescription("Clear the calculator back to 0"),
		mcp.WithString("session", mcp.Required(), mcp.Description("Session ID")),
	)
}

// Handle processes the tool request
func (t *ClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := mcp.ParseString(req, "session", "")
	if id == "" {
		return mcp.NewToolResultError("session parameter is required"), nil
	}

	applied, err := t.store.Apply(id, engine.Clear())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to clear session: %v", err)), nil
	}

	return mcp.NewToolResultText(formatSession(applied.Session)), nil
}
