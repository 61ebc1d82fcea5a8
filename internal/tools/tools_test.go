package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HendryAvila/assessor/internal/assessment"
	"github.com/HendryAvila/assessor/internal/report"
	"github.com/HendryAvila/assessor/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Test helpers ---

// newTestFlow returns a controller backed by an in-memory store with
// predictable client ids.
func newTestFlow(t *testing.T) (*assessment.Controller, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	n := 0
	flow := assessment.NewController(
		assessment.NewRepository(store),
		assessment.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("client-%d", n)
		}),
	)
	return flow, store
}

// isErrorResult checks if the result is a tool error.
func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

type handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// call invokes a tool handler and fails on Go errors.
func call(t *testing.T, h handler, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	return result
}

func phaseOneArgs() map[string]interface{} {
	return map[string]interface{}{
		"business_context":   "Regional logistics firm",
		"primary_challenges": "Manual dispatch",
		"key_stakeholders":   "COO, dispatch lead",
	}
}

func phaseTwoArgs() map[string]interface{} {
	return map[string]interface{}{
		"pain_points": []interface{}{
			map[string]interface{}{
				"stage":       "discovery",
				"description": "Manual triage",
				"impact":      "high",
				"frequency":   "daily",
				"cost":        "$5K/month",
			},
		},
		"priority_matrix": map[string]interface{}{"discovery": float64(1)},
		"business_impact": "Late deliveries",
	}
}

func phaseThreeArgs(choice string) map[string]interface{} {
	return map[string]interface{}{
		"budget_choice":         choice,
		"investment_timeframe":  "Q3",
		"decision_makers":       "CEO",
		"evidence_requirements": "Case studies",
	}
}

// advanceTo drives a flow through the tools up to (and including) phase n.
func advanceTo(t *testing.T, flow Flow, n int) {
	t.Helper()
	steps := []struct {
		h    handler
		args map[string]interface{}
	}{
		{NewStartTool(flow).Handle, nil},
		{NewPhaseOneTool(flow).Handle, phaseOneArgs()},
		{NewPhaseTwoTool(flow).Handle, phaseTwoArgs()},
		{NewPhaseThreeTool(flow).Handle, phaseThreeArgs("$2,490")},
	}
	for i := 0; i <= n && i < len(steps); i++ {
		result := call(t, steps[i].h, steps[i].args)
		if isErrorResult(result) {
			t.Fatalf("advance step %d: %s", i, getResultText(result))
		}
	}
}

// --- StartTool ---

func TestStartTool_Handle_Success(t *testing.T) {
	flow, _ := newTestFlow(t)
	result := call(t, NewStartTool(flow).Handle, nil)

	if isErrorResult(result) {
		t.Fatalf("unexpected error: %s", getResultText(result))
	}
	text := getResultText(result)
	if !strings.Contains(text, "client-1") {
		t.Error("response should include the client id")
	}
	if !strings.Contains(text, "assessment_phase1") {
		t.Error("response should point to assessment_phase1")
	}
	if flow.Step() != assessment.StepPhase1 {
		t.Errorf("step = %s, want phase1", flow.Step())
	}
}

func TestStartTool_Handle_TwiceIsRejected(t *testing.T) {
	flow, _ := newTestFlow(t)
	call(t, NewStartTool(flow).Handle, nil)

	result := call(t, NewStartTool(flow).Handle, nil)
	if !isErrorResult(result) {
		t.Fatal("expected error when starting from phase1")
	}
	if !strings.Contains(getResultText(result), "assessment_status") {
		t.Error("error should suggest assessment_status")
	}
}

// --- PhaseOneTool ---

func TestPhaseOneTool_Handle_Success(t *testing.T) {
	flow, _ := newTestFlow(t)
	advanceTo(t, flow, 0)

	result := call(t, NewPhaseOneTool(flow).Handle, phaseOneArgs())
	if isErrorResult(result) {
		t.Fatalf("unexpected error: %s", getResultText(result))
	}
	text := getResultText(result)
	if !strings.Contains(text, "50% of fields filled") {
		t.Errorf("expected progress in response, got:\n%s", text)
	}
	if !strings.Contains(text, "Discovery & Assessment") {
		t.Error("response should list the phase 2 stages")
	}
	if got := flow.Assessment().Phase1.BusinessContext; got != "Regional logistics firm" {
		t.Errorf("BusinessContext = %q", got)
	}
}

func TestPhaseOneTool_Handle_MissingFields(t *testing.T) {
	flow, _ := newTestFlow(t)
	advanceTo(t, flow, 0)

	result := call(t, NewPhaseOneTool(flow).Handle, map[string]interface{}{
		"business_context": "   ",
		"timeline":         "soon",
	})
	if !isErrorResult(result) {
		t.Fatal("expected validation error")
	}
	text := getResultText(result)
	for _, field := range []string{"businessContext", "primaryChallenges", "keyStakeholders"} {
		if !strings.Contains(text, field) {
			t.Errorf("error should mention %s, got:\n%s", field, text)
		}
	}
	if flow.Step() != assessment.StepPhase1 {
		t.Errorf("step = %s, want phase1", flow.Step())
	}
}

func TestPhaseOneTool_Handle_WrongStep(t *testing.T) {
	flow, _ := newTestFlow(t)
	result := call(t, NewPhaseOneTool(flow).Handle, phaseOneArgs())
	if !isErrorResult(result) {
		t.Fatal("expected error when submitting phase 1 from landing")
	}
}

// --- PhaseTwoTool ---

func TestPhaseTwoTool_Handle_Success(t *testing.T) {
	flow, _ := newTestFlow(t)
	advanceTo(t, flow, 1)

	result := call(t, NewPhaseTwoTool(flow).Handle, phaseTwoArgs())
	if isErrorResult(result) {
		t.Fatalf("unexpected error: %s", getResultText(result))
	}
	if !strings.Contains(getResultText(result), "$60,000") {
		t.Errorf("expected annual pain point cost, got:\n%s", getResultText(result))
	}

	p2 := flow.Assessment().Phase2
	if len(p2.PainPoints) != 1 || p2.PainPoints[0].Impact != assessment.ImpactHigh {
		t.Errorf("PainPoints = %+v", p2.PainPoints)
	}
	if p2.PriorityMatrix[assessment.StageDiscovery] != 1 {
		t.Errorf("PriorityMatrix = %v", p2.PriorityMatrix)
	}
}

func TestPhaseTwoTool_Handle_JSONStringArguments(t *testing.T) {
	flow, _ := newTestFlow(t)
	advanceTo(t, flow, 1)

	result := call(t, NewPhaseTwoTool(flow).Handle, map[string]interface{}{
		"pain_points": `[
			{"stage":"planning","description":"No roadmap","impact":"medium","frequency":"monthly","cost":"$2,000/month"},
			{"stage":"planning","description":"No roadmap at all","impact":"high","frequency":"weekly","cost":"$3K/month"}
		]`,
		"priority_matrix": `{"planning": 2}`,
		"business_impact": "Slow decisions",
	})
	if isErrorResult(result) {
		t.Fatalf("unexpected error: %s", getResultText(result))
	}

	points := flow.Assessment().Phase2.PainPoints
	if len(points) != 1 {
		t.Fatalf("expected duplicate stage to collapse, got %d points", len(points))
	}
	if points[0].Description != "No roadmap at all" {
		t.Errorf("later entry should win, got %q", points[0].Description)
	}
}

func TestPhaseTwoTool_Handle_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{
			name: "no pain points",
			args: map[string]interface{}{"business_impact": "x"},
			want: "painPoints",
		},
		{
			name: "malformed json",
			args: map[string]interface{}{"pain_points": "[{", "business_impact": "x"},
			want: "'pain_points' is not valid",
		},
		{
			name: "bad enum",
			args: map[string]interface{}{
				"pain_points":     `[{"stage":"strategy","description":"d","impact":"huge","frequency":"daily"}]`,
				"business_impact": "x",
			},
			want: "invalid stage",
		},
		{
			name: "priority out of range",
			args: map[string]interface{}{
				"pain_points":     `[{"stage":"analysis","description":"d","impact":"low","frequency":"daily"}]`,
				"priority_matrix": map[string]interface{}{"analysis": float64(9)},
				"business_impact": "x",
			},
			want: "priority must be between 1 and 5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow, _ := newTestFlow(t)
			advanceTo(t, flow, 1)

			result := call(t, NewPhaseTwoTool(flow).Handle, tt.args)
			if !isErrorResult(result) {
				t.Fatal("expected error")
			}
			if !strings.Contains(getResultText(result), tt.want) {
				t.Errorf("error should contain %q, got:\n%s", tt.want, getResultText(result))
			}
		})
	}
}

// --- PhaseThreeTool ---

type recordingObserver struct {
	reports []assessment.Report
}

func (o *recordingObserver) OnAssessmentComplete(r assessment.Report) {
	o.reports = append(o.reports, r)
}

func TestPhaseThreeTool_Handle_Success(t *testing.T) {
	flow, _ := newTestFlow(t)
	advanceTo(t, flow, 2)

	obs := &recordingObserver{}
	tool := NewPhaseThreeTool(flow)
	tool.SetObserver(obs)

	result := call(t, tool.Handle, phaseThreeArgs("$35,000-75,000"))
	if isErrorResult(result) {
		t.Fatalf("unexpected error: %s", getResultText(result))
	}
	text := getResultText(result)
	for _, want := range []string{"Implementation ($35K-75K)", "| Investment required | $55,000 |", "| Time to value | 6 months |"} {
		if !strings.Contains(text, want) {
			t.Errorf("response missing %q:\n%s", want, text)
		}
	}

	if flow.Step() != assessment.StepResult {
		t.Errorf("step = %s, want result", flow.Step())
	}
	if len(obs.reports) != 1 || obs.reports[0].Assessment.ClientID != "client-1" {
		t.Errorf("observer reports = %+v", obs.reports)
	}
}

func TestPhaseThreeTool_Handle_OtherBudget(t *testing.T) {
	flow, _ := newTestFlow(t)
	advanceTo(t, flow, 2)

	args := phaseThreeArgs(assessment.BudgetOther)
	args["budget_other"] = "$18,000"
	result := call(t, NewPhaseThreeTool(flow).Handle, args)
	if isErrorResult(result) {
		t.Fatalf("unexpected error: %s", getResultText(result))
	}

	a := flow.Assessment()
	if a.Phase3.BudgetRange != "$18,000" {
		t.Errorf("BudgetRange = %q, want $18,000", a.Phase3.BudgetRange)
	}
	if *a.ServiceTier != assessment.TierDiscovery {
		t.Errorf("tier = %s, want discovery", *a.ServiceTier)
	}
}

func TestPhaseThreeTool_Handle_OtherWithoutAmount(t *testing.T) {
	flow, _ := newTestFlow(t)
	advanceTo(t, flow, 2)

	result := call(t, NewPhaseThreeTool(flow).Handle, phaseThreeArgs(assessment.BudgetOther))
	if !isErrorResult(result) {
		t.Fatal("expected error for empty custom budget")
	}
	if !strings.Contains(getResultText(result), "budgetRange") {
		t.Errorf("error should mention budgetRange, got:\n%s", getResultText(result))
	}
}

// --- BackTool / ModifyTool ---

func TestBackTool_Handle_ShowsPreviousAnswers(t *testing.T) {
	flow, _ := newTestFlow(t)
	advanceTo(t, flow, 1)

	result := call(t, NewBackTool(flow).Handle, nil)
	if isErrorResult(result) {
		t.Fatalf("unexpected error: %s", getResultText(result))
	}
	text := getResultText(result)
	if !strings.Contains(text, "_Previously answered:_ Regional logistics firm") {
		t.Errorf("expected prefilled answer, got:\n%s", text)
	}
	if flow.Step() != assessment.StepPhase1 {
		t.Errorf("step = %s, want phase1", flow.Step())
	}
}

func TestBackTool_Handle_LandingRejected(t *testing.T) {
	flow, _ := newTestFlow(t)
	if !isErrorResult(call(t, NewBackTool(flow).Handle, nil)) {
		t.Fatal("expected error going back from landing")
	}
}

func TestModifyTool_Handle(t *testing.T) {
	flow, _ := newTestFlow(t)
	advanceTo(t, flow, 3)

	tool := NewModifyTool(flow)
	for _, bad := range []interface{}{nil, float64(0), float64(4), "2"} {
		args := map[string]interface{}{}
		if bad != nil {
			args["phase"] = bad
		}
		if !isErrorResult(call(t, tool.Handle, args)) {
			t.Errorf("phase=%v: expected error", bad)
		}
	}

	result := call(t, tool.Handle, map[string]interface{}{"phase": float64(2)})
	if isErrorResult(result) {
		t.Fatalf("unexpected error: %s", getResultText(result))
	}
	if flow.Step() != assessment.StepPhase2 {
		t.Errorf("step = %s, want phase2", flow.Step())
	}
	if !strings.Contains(getResultText(result), "_Previously answered:_ Manual triage") {
		t.Errorf("expected stored pain point in response:\n%s", getResultText(result))
	}

	// Cannot modify forward.
	if !isErrorResult(call(t, tool.Handle, map[string]interface{}{"phase": float64(3)})) {
		t.Error("expected error modifying a later phase")
	}
}

// --- ResetTool ---

func TestResetTool_Handle(t *testing.T) {
	flow, store := newTestFlow(t)
	advanceTo(t, flow, 3)
	tool := NewResetTool(flow)

	if !isErrorResult(call(t, tool.Handle, nil)) {
		t.Fatal("expected error without confirm")
	}
	if flow.Step() != assessment.StepResult {
		t.Fatal("unconfirmed reset must not change state")
	}

	result := call(t, tool.Handle, map[string]interface{}{"confirm": true})
	if isErrorResult(result) {
		t.Fatalf("unexpected error: %s", getResultText(result))
	}
	text := getResultText(result)
	if !strings.Contains(text, "`client-1` was discarded") || !strings.Contains(text, "`client-2`") {
		t.Errorf("unexpected response:\n%s", text)
	}

	saved, err := assessment.NewRepository(store).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if saved.ClientID != "client-2" || saved.Phase1 != nil {
		t.Errorf("stored record = %+v, want fresh client-2", saved)
	}
}

// --- StatusTool ---

func TestStatusTool_Handle_Fresh(t *testing.T) {
	flow, _ := newTestFlow(t)
	text := getResultText(call(t, NewStatusTool(flow).Handle, nil))

	for _, want := range []string{"**Step:** Welcome", report.Placeholder, "| 1 | not answered |", "assessment_start"} {
		if !strings.Contains(text, want) {
			t.Errorf("status missing %q:\n%s", want, text)
		}
	}
}

func TestStatusTool_Handle_Complete(t *testing.T) {
	flow, _ := newTestFlow(t)
	advanceTo(t, flow, 3)
	text := getResultText(call(t, NewStatusTool(flow).Handle, nil))

	for _, want := range []string{
		"**Step:** Assessment Results",
		"**Business phase:** 5 (Human Handoff Preparation)",
		"| 2 | saved, 1 of 5 stages with pain points |",
		"| 3 | saved, 66% of fields filled |",
		"AI Advisory ($2,490)",
		"| Projected annual value | $12,000 |",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("status missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, report.Placeholder) {
		t.Error("complete assessment should not show the placeholder")
	}
}

// --- ExportTool ---

func TestExportTool_Handle(t *testing.T) {
	flow, _ := newTestFlow(t)
	advanceTo(t, flow, 3)
	dir := t.TempDir()
	tool := NewExportTool(flow, report.NewExporter(dir))

	for _, format := range []string{"json", "html"} {
		result := call(t, tool.Handle, map[string]interface{}{"format": format})
		if isErrorResult(result) {
			t.Fatalf("%s: unexpected error: %s", format, getResultText(result))
		}
		want := filepath.Join(dir, "constitutional-compliance-assessment-client-1."+format)
		if _, err := os.Stat(want); err != nil {
			t.Errorf("%s: expected file %s: %v", format, want, err)
		}
		if !strings.Contains(getResultText(result), want) {
			t.Errorf("%s: response should include the path", format)
		}
	}

	if !isErrorResult(call(t, tool.Handle, map[string]interface{}{"format": "pdf"})) {
		t.Error("expected error for unsupported format")
	}
}

func TestExportTool_Handle_Incomplete(t *testing.T) {
	flow, _ := newTestFlow(t)
	tool := NewExportTool(flow, report.NewExporter(t.TempDir()))

	result := call(t, tool.Handle, nil)
	if isErrorResult(result) {
		t.Fatalf("unexpected error: %s", getResultText(result))
	}
	if !strings.Contains(getResultText(result), "not complete yet") {
		t.Errorf("expected incomplete note:\n%s", getResultText(result))
	}
}

type failingExporter struct{}

func (failingExporter) Export(assessment.Report, report.Format) (string, error) {
	return "", errors.New("disk full")
}

func TestExportTool_Handle_ExportFailure(t *testing.T) {
	flow, _ := newTestFlow(t)
	req := mcp.CallToolRequest{}
	_, err := NewExportTool(flow, failingExporter{}).Handle(context.Background(), req)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected export error, got %v", err)
	}
}

// --- ConsultationTool ---

func TestConsultationTool_Handle(t *testing.T) {
	flow, _ := newTestFlow(t)
	text := getResultText(call(t, NewConsultationTool(flow).Handle, nil))
	if text != assessment.ConsultationNotice {
		t.Errorf("got %q", text)
	}
	if flow.Step() != assessment.StepLanding {
		t.Error("consultation must not change the step")
	}
}

// --- ReportBridge ---

func TestReportBridge_ExportsOnCompletion(t *testing.T) {
	if NewReportBridge(nil, nil) != nil {
		t.Error("nil exporter should give a nil bridge")
	}

	flow, _ := newTestFlow(t)
	advanceTo(t, flow, 2)
	dir := t.TempDir()

	tool := NewPhaseThreeTool(flow)
	tool.SetObserver(NewReportBridge(report.NewExporter(dir), nil))
	call(t, tool.Handle, phaseThreeArgs("$2,490"))

	path := filepath.Join(dir, assessment.ReportFilename("client-1"))
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected auto-exported report: %v", err)
	}
}

func TestReportBridge_FailureIsNotFatal(t *testing.T) {
	b := NewReportBridge(failingExporter{}, nil)
	b.OnAssessmentComplete(assessment.Report{})
}
