package tools

import (
	"context"
	"fmt"

	"github.com/HendryAvila/assessor/internal/assessment"
	"github.com/mark3labs/mcp-go/mcp"
)

// PhaseOneTool handles the assessment_phase1 MCP tool.
// It saves the business exploration answers and advances to Phase 2.
type PhaseOneTool struct {
	flow Flow
}

// NewPhaseOneTool creates a PhaseOneTool.
func NewPhaseOneTool(flow Flow) *PhaseOneTool {
	return &PhaseOneTool{flow: flow}
}

// Definition returns the MCP tool definition for registration.
func (t *PhaseOneTool) Definition() mcp.Tool {
	return mcp.NewTool("assessment_phase1",
		mcp.WithDescription(
			"Save Phase 1 (Open-ended Business Exploration) answers and continue to Phase 2. "+
				"Pass the client's own words; do not invent answers. "+
				"business_context, primary_challenges and key_stakeholders are required.",
		),
		mcp.WithString("business_context",
			mcp.Required(),
			mcp.Description("The business, its market and operating model"),
		),
		mcp.WithString("primary_challenges",
			mcp.Required(),
			mcp.Description("The biggest operational challenges today"),
		),
		mcp.WithString("current_solutions",
			mcp.Description("Tools or processes currently addressing the challenges"),
		),
		mcp.WithString("key_stakeholders",
			mcp.Required(),
			mcp.Description("Who owns the problems and who makes decisions"),
		),
		mcp.WithString("success_metrics",
			mcp.Description("How success will be measured"),
		),
		mcp.WithString("timeline",
			mcp.Description("Desired timeline"),
		),
	)
}

// Handle processes the assessment_phase1 tool call.
func (t *PhaseOneTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers := assessment.PhaseOneAnswers{
		BusinessContext:   argString(req, "business_context"),
		PrimaryChallenges: argString(req, "primary_challenges"),
		CurrentSolutions:  argString(req, "current_solutions"),
		KeyStakeholders:   argString(req, "key_stakeholders"),
		SuccessMetrics:    argString(req, "success_metrics"),
		Timeline:          argString(req, "timeline"),
	}
	if err := t.flow.CompletePhaseOne(answers); err != nil {
		return flowError(err)
	}
	step, a := t.flow.Snapshot()

	response := fmt.Sprintf(
		"# Phase 1 Saved\n\n"+
			"Business exploration recorded (%d%% of fields filled).\n\n"+
			"## Progress\n\n%s\n"+
			"## Next Step\n\n%s",
		answers.Progress(), renderProgress(step), renderNextStep(step, a),
	)
	return mcp.NewToolResultText(response), nil
}
