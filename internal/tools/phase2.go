package tools

import (
	"context"
	"fmt"

	"github.com/HendryAvila/assessor/internal/assessment"
	"github.com/HendryAvila/assessor/internal/report"
	"github.com/mark3labs/mcp-go/mcp"
)

// PhaseTwoTool handles the assessment_phase2 MCP tool.
// It saves the five-stage pain point analysis and advances to Phase 3.
type PhaseTwoTool struct {
	flow Flow
}

// NewPhaseTwoTool creates a PhaseTwoTool.
func NewPhaseTwoTool(flow Flow) *PhaseTwoTool {
	return &PhaseTwoTool{flow: flow}
}

// Definition returns the MCP tool definition for registration.
func (t *PhaseTwoTool) Definition() mcp.Tool {
	return mcp.NewTool("assessment_phase2",
		mcp.WithDescription(
			"Save Phase 2 (Systematic Business Intelligence) answers and continue to Phase 3. "+
				"pain_points is a list of {stage, description, impact, frequency, cost} objects, "+
				"at most one per stage; a later entry for the same stage replaces an earlier one. "+
				"At least one pain point and business_impact are required.",
		),
		mcp.WithArray("pain_points",
			mcp.Required(),
			mcp.Description(
				"Pain points. stage: discovery|analysis|planning|implementation|monitoring; "+
					"impact: low|medium|high; frequency: daily|weekly|monthly|quarterly; "+
					"cost: estimated monthly cost such as \"$5K/month\". A JSON string is also accepted.",
			),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"stage":       map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"impact":      map[string]any{"type": "string"},
					"frequency":   map[string]any{"type": "string"},
					"cost":        map[string]any{"type": "string"},
				},
				"required": []string{"stage", "description", "impact", "frequency"},
			}),
		),
		mcp.WithObject("priority_matrix",
			mcp.Description("Optional priority (1-5) per stage, e.g. {\"discovery\": 1}"),
		),
		mcp.WithString("business_impact",
			mcp.Required(),
			mcp.Description("What the pain points cost the business overall"),
		),
		mcp.WithString("resource_constraints",
			mcp.Description("Staffing, budget or technical limitations"),
		),
	)
}

// Handle processes the assessment_phase2 tool call.
func (t *PhaseTwoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var submitted []assessment.PainPoint
	if _, err := decodeArg(req, "pain_points", &submitted); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var points []assessment.PainPoint
	for _, p := range submitted {
		points = assessment.UpsertPainPoint(points, p)
	}

	var matrix map[assessment.Stage]int
	if _, err := decodeArg(req, "priority_matrix", &matrix); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	answers := assessment.PhaseTwoAnswers{
		PainPoints:          points,
		PriorityMatrix:      matrix,
		BusinessImpact:      argString(req, "business_impact"),
		ResourceConstraints: argString(req, "resource_constraints"),
	}
	if err := t.flow.CompletePhaseTwo(answers); err != nil {
		return flowError(err)
	}
	step, a := t.flow.Snapshot()

	annual := assessment.AnnualPainPointCost(points)
	response := fmt.Sprintf(
		"# Phase 2 Saved\n\n"+
			"%d pain point(s) recorded. Estimated annual cost of identified pain points: %s.\n\n"+
			"## Progress\n\n%s\n"+
			"## Next Step\n\n%s",
		len(points), report.Currency(annual), renderProgress(step), renderNextStep(step, a),
	)
	return mcp.NewToolResultText(response), nil
}
