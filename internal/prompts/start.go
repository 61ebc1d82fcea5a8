// Package prompts implements MCP prompt handlers for the assessment.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the assessment-start MCP prompt.
// It guides the AI through the three questionnaires.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("assessment-start",
		mcp.WithPromptDescription(
			"Run the constitutional business assessment with a client: "+
				"business exploration, five-stage pain point analysis and investment "+
				"qualification, ending with a recommended service tier and ROI projection.",
		),
		mcp.WithArgument("client_name",
			mcp.ArgumentDescription("Name of the client organization (used only in the conversation)"),
		),
	)
}

// Handle processes the assessment-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	client := "the client"
	if args := req.Params.Arguments; args != nil {
		if name, ok := args["client_name"]; ok && name != "" {
			client = name
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Business assessment for %s", client),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to run a business assessment for %s.\n\n"+
						"Please:\n"+
						"1. Run `assessment_status`. If an assessment is already in progress, ask me whether to "+
						"resume it or start over with `assessment_reset`\n"+
						"2. Otherwise run `assessment_start`\n"+
						"3. Ask me the Phase 1 questions one or two at a time, then call `assessment_phase1` with my answers\n"+
						"4. Walk through the five stages (discovery, analysis, planning, implementation, monitoring), "+
						"capturing at most one pain point per stage with impact, frequency and monthly cost, "+
						"then call `assessment_phase2`\n"+
						"5. Ask about budget, timeframe, decision makers and evidence needs, then call `assessment_phase3`\n"+
						"6. Present the recommended tier and ROI projection and offer `assessment_export`\n\n"+
						"Use my own words in every answer. Never invent figures: ROI projections must rest on the data I give.",
					client,
				)),
			},
		},
	}, nil
}
