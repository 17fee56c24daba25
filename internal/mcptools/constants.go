package mcptools

// Tool name prefix for all MCP tools
const ToolPrefix = "calculator_"

// Tool names
const (
	ToolPress = ToolPrefix + "press"
	ToolState = ToolPrefix + "state"
	ToolClear = ToolPrefix + "clear"
)

// Server identity reported during the MCP handshake
const (
	ServerName    = "calculator"
	ServerVersion = "0.1.0"
)
