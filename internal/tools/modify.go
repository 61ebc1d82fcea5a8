package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ModifyTool handles the assessment_modify MCP tool.
// It jumps back to an earlier questionnaire so answers can be revised.
type ModifyTool struct {
	flow Flow
}

// NewModifyTool creates a ModifyTool.
func NewModifyTool(flow Flow) *ModifyTool {
	return &ModifyTool{flow: flow}
}

// Definition returns the MCP tool definition for registration.
func (t *ModifyTool) Definition() mcp.Tool {
	return mcp.NewTool("assessment_modify",
		mcp.WithDescription(
			"Revise an earlier questionnaire. Jumps to phase 1, 2 or 3 from any later step "+
				"(typically from the results). Later phases must be submitted again afterwards, "+
				"which recomputes the tier and ROI.",
		),
		mcp.WithNumber("phase",
			mcp.Required(),
			mcp.Description("Questionnaire phase to revise: 1, 2 or 3"),
		),
	)
}

// Handle processes the assessment_modify tool call.
func (t *ModifyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	phase := argInt(req, "phase", 0)
	if phase < 1 || phase > 3 {
		return mcp.NewToolResultError("'phase' must be 1, 2 or 3"), nil
	}
	if err := t.flow.Modify(phase); err != nil {
		return flowError(err)
	}
	step, a := t.flow.Snapshot()

	response := fmt.Sprintf(
		"# Revising %s\n\n"+
			"## Progress\n\n%s\n"+
			"## Next Step\n\n%s",
		stepLabels[step], renderProgress(step), renderNextStep(step, a),
	)
	return mcp.NewToolResultText(response), nil
}
