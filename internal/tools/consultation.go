package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ConsultationTool handles the assessment_schedule_consultation MCP tool.
// Scheduling is not integrated; the tool only returns a notice.
type ConsultationTool struct {
	flow Flow
}

// NewConsultationTool creates a ConsultationTool.
func NewConsultationTool(flow Flow) *ConsultationTool {
	return &ConsultationTool{flow: flow}
}

// Definition returns the MCP tool definition for registration.
func (t *ConsultationTool) Definition() mcp.Tool {
	return mcp.NewTool("assessment_schedule_consultation",
		mcp.WithDescription(
			"Request a follow-up consultation. No calendar is connected: this returns a notice "+
				"and changes nothing.",
		),
	)
}

// Handle processes the assessment_schedule_consultation tool call.
func (t *ConsultationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.flow.ScheduleConsultation()), nil
}
