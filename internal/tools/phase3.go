package tools

import (
	"context"
	"fmt"

	"github.com/HendryAvila/assessor/internal/assessment"
	"github.com/HendryAvila/assessor/internal/report"
	"github.com/mark3labs/mcp-go/mcp"
)

// PhaseThreeTool handles the assessment_phase3 MCP tool.
// It saves the investment qualification, which classifies the budget
// into a service tier and projects the ROI.
type PhaseThreeTool struct {
	flow     Flow
	observer CompletionObserver
}

// NewPhaseThreeTool creates a PhaseThreeTool.
func NewPhaseThreeTool(flow Flow) *PhaseThreeTool {
	return &PhaseThreeTool{flow: flow}
}

// SetObserver sets the optional observer notified when the assessment
// completes. Nil disables notification.
func (t *PhaseThreeTool) SetObserver(obs CompletionObserver) {
	t.observer = obs
}

// Definition returns the MCP tool definition for registration.
func (t *PhaseThreeTool) Definition() mcp.Tool {
	values := make([]string, 0, len(assessment.BudgetOptions))
	for _, opt := range assessment.BudgetOptions {
		values = append(values, opt.Value)
	}
	return mcp.NewTool("assessment_phase3",
		mcp.WithDescription(
			"Save Phase 3 (Investment Capacity Qualification) answers and produce the result: "+
				"the recommended service tier and an evidence-based ROI projection. "+
				"budget_choice, investment_timeframe, decision_makers and evidence_requirements are required.",
		),
		mcp.WithString("budget_choice",
			mcp.Required(),
			mcp.Description("One of the budget options; use \"other\" with budget_other for a custom amount"),
			mcp.Enum(values...),
		),
		mcp.WithString("budget_other",
			mcp.Description("Custom budget amount when budget_choice is \"other\""),
		),
		mcp.WithString("investment_timeframe",
			mcp.Required(),
			mcp.Description("When the investment would be made"),
		),
		mcp.WithString("decision_makers",
			mcp.Required(),
			mcp.Description("Who approves the budget"),
		),
		mcp.WithString("previous_investments",
			mcp.Description("Prior technology or consulting investments"),
		),
		mcp.WithString("expected_roi",
			mcp.Description("Return the client expects"),
		),
		mcp.WithString("evidence_requirements",
			mcp.Required(),
			mcp.Description("Evidence the client needs before deciding"),
		),
	)
}

// Handle processes the assessment_phase3 tool call.
func (t *PhaseThreeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers := assessment.PhaseThreeAnswers{
		BudgetRange:          assessment.ResolveBudget(argString(req, "budget_choice"), argString(req, "budget_other")),
		InvestmentTimeframe:  argString(req, "investment_timeframe"),
		DecisionMakers:       argString(req, "decision_makers"),
		PreviousInvestments:  argString(req, "previous_investments"),
		ExpectedROI:          argString(req, "expected_roi"),
		EvidenceRequirements: argString(req, "evidence_requirements"),
	}
	if err := t.flow.CompletePhaseThree(answers); err != nil {
		return flowError(err)
	}
	step, a := t.flow.Snapshot()

	if t.observer != nil {
		t.observer.OnAssessmentComplete(t.flow.Report())
	}

	response := fmt.Sprintf(
		"# Assessment Complete\n\n"+
			"**Client:** `%s`\n"+
			"**Budget:** %s\n\n"+
			"## Progress\n\n%s\n"+
			"%s"+
			"## Next Step\n\n%s",
		a.ClientID, answers.BudgetRange, renderProgress(step), report.Result(a), renderNextStep(step, a),
	)
	return mcp.NewToolResultText(response), nil
}
