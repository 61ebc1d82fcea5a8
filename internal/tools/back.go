package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// BackTool handles the assessment_back MCP tool.
type BackTool struct {
	flow Flow
}

// NewBackTool creates a BackTool.
func NewBackTool(flow Flow) *BackTool {
	return &BackTool{flow: flow}
}

// Definition returns the MCP tool definition for registration.
func (t *BackTool) Definition() mcp.Tool {
	return mcp.NewTool("assessment_back",
		mcp.WithDescription(
			"Go back one step. Stored answers are kept and shown as previous answers, "+
				"so the client can confirm or revise them. Not available on the landing step.",
		),
	)
}

// Handle processes the assessment_back tool call.
func (t *BackTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.flow.Back(); err != nil {
		return flowError(err)
	}
	step, a := t.flow.Snapshot()

	response := fmt.Sprintf(
		"# Back to %s\n\n"+
			"## Progress\n\n%s\n"+
			"## Next Step\n\n%s",
		stepLabels[step], renderProgress(step), renderNextStep(step, a),
	)
	return mcp.NewToolResultText(response), nil
}
