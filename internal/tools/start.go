package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartTool handles the assessment_start MCP tool.
// It leaves the landing step and presents the Phase 1 questions.
type StartTool struct {
	flow Flow
}

// NewStartTool creates a StartTool.
func NewStartTool(flow Flow) *StartTool {
	return &StartTool{flow: flow}
}

// Definition returns the MCP tool definition for registration.
func (t *StartTool) Definition() mcp.Tool {
	return mcp.NewTool("assessment_start",
		mcp.WithDescription(
			"Begin the constitutional business assessment. Moves from the landing step to "+
				"Phase 1 (Business Exploration) and returns the questions to ask the client. "+
				"Only valid on the landing step; use `assessment_status` to see where an "+
				"existing assessment stands.",
		),
	)
}

// Handle processes the assessment_start tool call.
func (t *StartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.flow.Start(); err != nil {
		return flowError(err)
	}
	step, a := t.flow.Snapshot()

	response := fmt.Sprintf(
		"# Assessment Started\n\n"+
			"**Client:** `%s`\n\n"+
			"The assessment has three questionnaires: business exploration, "+
			"a five-stage pain point analysis and investment capacity. "+
			"Answers are saved after every phase, so the client can stop and resume.\n\n"+
			"## Progress\n\n%s\n"+
			"## Next Step\n\n%s",
		a.ClientID, renderProgress(step), renderNextStep(step, a),
	)
	return mcp.NewToolResultText(response), nil
}
