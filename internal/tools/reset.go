package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ResetTool handles the assessment_reset MCP tool.
type ResetTool struct {
	flow Flow
}

// NewResetTool creates a ResetTool.
func NewResetTool(flow Flow) *ResetTool {
	return &ResetTool{flow: flow}
}

// Definition returns the MCP tool definition for registration.
func (t *ResetTool) Definition() mcp.Tool {
	return mcp.NewTool("assessment_reset",
		mcp.WithDescription(
			"Discard the current assessment and start over with a new client id. "+
				"All stored answers and results are deleted. Requires confirm=true.",
		),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true; the reset cannot be undone"),
		),
	)
}

// Handle processes the assessment_reset tool call.
func (t *ResetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !argBool(req, "confirm", false) {
		return mcp.NewToolResultError("Reset deletes all answers. Call again with confirm=true to proceed."), nil
	}
	_, before := t.flow.Snapshot()
	if err := t.flow.Reset(); err != nil {
		return flowError(err)
	}
	step, a := t.flow.Snapshot()

	response := fmt.Sprintf(
		"# Assessment Reset\n\n"+
			"Assessment `%s` was discarded. New client id: `%s`.\n\n"+
			"## Next Step\n\n%s",
		before.ClientID, a.ClientID, renderNextStep(step, a),
	)
	return mcp.NewToolResultText(response), nil
}
