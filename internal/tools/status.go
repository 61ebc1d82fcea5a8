package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusTool handles the assessment_status MCP tool.
type StatusTool struct {
	flow Flow
}

// NewStatusTool creates a StatusTool.
func NewStatusTool(flow Flow) *StatusTool {
	return &StatusTool{flow: flow}
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("assessment_status",
		mcp.WithDescription(
			"Show the current assessment: flow step, saved phases with progress, "+
				"the recommended tier and ROI when available, and what to do next. Read-only.",
		),
	)
}

// Handle processes the assessment_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	step, a := t.flow.Snapshot()
	return mcp.NewToolResultText(renderStatus(step, a)), nil
}
