package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"go-chi-calculator/internal/session"
)

// StateTool reports the displays of a calculator session
type StateTool struct {
	store *session.Store
}

// NewStateTool creates a new state tool
func NewStateTool(store *session.Store) *StateTool {
	return &StateTool{store: store}
}

// GetTool returns the MCP tool definition
func (t *StateTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolState,
		mcp.WithDescription("Show the current calculator displays"),
		mcp.WithString("session", mcp.Required(), mcp.Description("Session ID")),
	)
}

// Handle processes the tool request
func (t *StateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := mcp.ParseString(req, "session", "")
	if id == "" {
		return mcp.NewToolResultError("session parameter is required"), nil
	}

	sess, err := t.store.Get(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read session: %v", err)), nil
	}

	return mcp.NewToolResultText(formatSession(sess)), nil
}
