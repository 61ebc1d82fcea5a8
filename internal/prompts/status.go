package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusPrompt handles the assessment-status MCP prompt.
// It instructs the AI to read and present the current assessment state.
type StatusPrompt struct{}

// NewStatusPrompt creates a StatusPrompt.
func NewStatusPrompt() *StatusPrompt {
	return &StatusPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StatusPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("assessment-status",
		mcp.WithPromptDescription(
			"Check where the current assessment stands: completed phases, "+
				"recommended tier, ROI projection and what to do next.",
		),
	)
}

// Handle processes the assessment-status prompt request.
func (p *StatusPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Assessment Status",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run `assessment_status` to check my assessment.\n\n" +
						"Then:\n" +
						"1. Summarize which phases are saved and how complete they are\n" +
						"2. If there is a result, explain the recommended tier and the ROI projection in plain terms\n" +
						"3. Tell me exactly what I should do next",
				),
			},
		},
	}, nil
}
