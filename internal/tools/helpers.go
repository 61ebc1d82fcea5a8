// Package tools implements MCP tool handlers for the assessment wizard.
//
// Each tool receives its dependencies via its struct (DIP) and exposes a
// Definition and a Handle compatible with mcp-go's CallToolRequest
// signature.
//
// Design principles:
// - SRP: each file = one tool
// - DIP: tools depend on the Flow interface, not on the controller type
// - user mistakes (missing fields, wrong step) are tool errors, not Go errors
package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/assessor/internal/assessment"
	"github.com/mark3labs/mcp-go/mcp"
)

// Flow is the wizard surface the tools drive. *assessment.Controller
// implements it.
type Flow interface {
	Snapshot() (assessment.Step, *assessment.ClientAssessment)
	Start() error
	CompletePhaseOne(answers assessment.PhaseOneAnswers) error
	CompletePhaseTwo(answers assessment.PhaseTwoAnswers) error
	CompletePhaseThree(answers assessment.PhaseThreeAnswers) error
	Back() error
	Modify(phase int) error
	Reset() error
	Report() assessment.Report
	ScheduleConsultation() string
}

// argString returns a trimmed string argument.
func argString(req mcp.CallToolRequest, key string) string {
	return strings.TrimSpace(req.GetString(key, ""))
}

// argInt extracts an integer argument (JSON numbers arrive as float64).
func argInt(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// argBool extracts a boolean argument.
func argBool(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// decodeArg decodes a structured argument into out. Hosts send either a
// JSON value or a string holding JSON, so both are accepted. Returns
// false when the argument is absent.
func decodeArg(req mcp.CallToolRequest, key string, out any) (bool, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return false, nil
	}

	var data []byte
	switch v := raw.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return false, nil
		}
		data = []byte(v)
	default:
		var err error
		data, err = json.Marshal(v)
		if err != nil {
			return true, fmt.Errorf("encoding %s: %w", key, err)
		}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("'%s' is not valid: %v", key, err)
	}
	return true, nil
}

// flowError converts a controller error into a tool result. Validation
// and transition errors are user-facing; anything else (storage) is a
// real error and is returned as such.
func flowError(err error) (*mcp.CallToolResult, error) {
	if fields := assessment.FieldErrors(err); len(fields) > 0 {
		var b strings.Builder
		b.WriteString("Please fix the following before continuing:\n\n")
		for _, fe := range fields {
			fmt.Fprintf(&b, "- `%s`: %s\n", fe.Field, fe.Message)
		}
		return mcp.NewToolResultError(b.String()), nil
	}
	if errors.Is(err, assessment.ErrInvalidTransition) {
		return mcp.NewToolResultError(fmt.Sprintf(
			"%v\n\nRun `assessment_status` to see where the assessment currently is.", err)), nil
	}
	return nil, err
}
