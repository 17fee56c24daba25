package mcptools

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"go-chi-calculator/internal/session"
)

// NewServer builds an MCP server exposing the calculator tools over store.
func NewServer(store *session.Store) *server.MCPServer {
	s := server.NewMCPServer(ServerName, ServerVersion)
	Register(s, store)
	return s
}

// Register adds every calculator tool to s.
func Register(s *server.MCPServer, store *session.Store) {
	press := NewPressTool(store)
	s.AddTool(press.GetTool(), press.Handle)

	state := NewStateTool(store)
	s.AddTool(state.GetTool(), state.Handle)

	clearTool := NewClearTool(store)
	s.AddTool(clearTool.GetTool(), clearTool.Handle)
}

// formatSession renders a session as tool output text
func formatSession(sess session.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "session: %s\n", sess.ID)
	if expr := sess.State.CalculationDisplay(); expr != "" {
		fmt.Fprintf(&b, "expression: %s\n", expr)
	}
	fmt.Fprintf(&b, "display: %s", sess.State.ResultDisplay())
	return b.String()
}
