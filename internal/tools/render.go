package tools

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/assessor/internal/assessment"
	"github.com/HendryAvila/assessor/internal/report"
)

// stepLabels are the headings used for each flow step.
var stepLabels = map[assessment.Step]string{
	assessment.StepLanding: "Welcome",
	assessment.StepPhase1:  "Phase 1: Business Exploration",
	assessment.StepPhase2:  "Phase 2: Pain Point Analysis",
	assessment.StepPhase3:  "Phase 3: Investment Capacity",
	assessment.StepResult:  "Assessment Results",
}

// renderProgress renders the five-step progress bar.
func renderProgress(step assessment.Step) string {
	var b strings.Builder
	current := assessment.StepIndex(step)
	for i, s := range assessment.StepOrder {
		marker := "⬜"
		switch {
		case i < current:
			marker = "✅"
		case i == current:
			marker = "🔄"
		}
		fmt.Fprintf(&b, "%s %s\n", marker, stepLabels[s])
	}
	return b.String()
}

// renderNextStep tells the host which tool to call at a given step.
func renderNextStep(step assessment.Step, a *assessment.ClientAssessment) string {
	switch step {
	case assessment.StepLanding:
		return "Call `assessment_start` to begin the three-phase questionnaire."
	case assessment.StepPhase1:
		return "Ask the client the Phase 1 questions, then call `assessment_phase1`.\n\n" + renderPhaseOneQuestions(a.Phase1)
	case assessment.StepPhase2:
		return "Walk the client through the five stages, then call `assessment_phase2`.\n\n" + renderPhaseTwoQuestions(a.Phase2)
	case assessment.StepPhase3:
		return "Qualify the investment capacity, then call `assessment_phase3`.\n\n" + renderPhaseThreeQuestions(a.Phase3)
	case assessment.StepResult:
		return "Share the results. Use `assessment_export` to download the report, " +
			"`assessment_schedule_consultation` to book a follow-up, or `assessment_modify` to revise an earlier phase."
	}
	return ""
}

// prefill shows a previously stored answer so the host can confirm or revise it.
func prefill(label, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Sprintf("- %s\n", label)
	}
	return fmt.Sprintf("- %s\n  - _Previously answered:_ %s\n", label, value)
}

func renderPhaseOneQuestions(p *assessment.PhaseOneAnswers) string {
	if p == nil {
		p = &assessment.PhaseOneAnswers{}
	}
	var b strings.Builder
	b.WriteString("### Questions\n\n")
	b.WriteString(prefill("`business_context` (required): Describe the business, its market and operating model.", p.BusinessContext))
	b.WriteString(prefill("`primary_challenges` (required): What are the biggest operational challenges today?", p.PrimaryChallenges))
	b.WriteString(prefill("`current_solutions`: What tools or processes address them now?", p.CurrentSolutions))
	b.WriteString(prefill("`key_stakeholders` (required): Who owns these problems and who decides?", p.KeyStakeholders))
	b.WriteString(prefill("`success_metrics`: How will success be measured?", p.SuccessMetrics))
	b.WriteString(prefill("`timeline`: What is the desired timeline?", p.Timeline))
	return b.String()
}

func renderPhaseTwoQuestions(p *assessment.PhaseTwoAnswers) string {
	if p == nil {
		p = &assessment.PhaseTwoAnswers{}
	}
	var b strings.Builder
	b.WriteString("### Stages\n\n")
	b.WriteString("Record at most one pain point per stage (`pain_points`), with impact (low, medium, high), ")
	b.WriteString("frequency (daily, weekly, monthly, quarterly) and an estimated monthly cost such as `$5K/month`.\n\n")
	for _, stage := range assessment.StageOrder {
		info, _ := assessment.StageDetails(stage)
		fmt.Fprintf(&b, "- **%s** (`%s`): %s\n", info.Name, stage, info.Description)
		if pp, ok := p.PainPointFor(stage); ok {
			fmt.Fprintf(&b, "  - _Previously answered:_ %s (%s impact, %s, %s)\n",
				pp.Description, pp.Impact, pp.Frequency, pp.Cost)
		}
	}
	b.WriteString("\n")
	b.WriteString(prefill("`business_impact` (required): What does this cost the business overall?", p.BusinessImpact))
	b.WriteString(prefill("`resource_constraints`: Staffing, budget or technical limits.", p.ResourceConstraints))
	return b.String()
}

func renderPhaseThreeQuestions(p *assessment.PhaseThreeAnswers) string {
	if p == nil {
		p = &assessment.PhaseThreeAnswers{}
	}
	var b strings.Builder
	b.WriteString("### Budget options (`budget_choice`)\n\n")
	for _, opt := range assessment.BudgetOptions {
		fmt.Fprintf(&b, "- `%s`: %s\n", opt.Value, opt.Label)
	}
	b.WriteString("\nWith `other`, pass the amount in `budget_other`.\n\n")
	b.WriteString("### Questions\n\n")
	b.WriteString(prefill("`budget_choice` (required)", p.BudgetRange))
	b.WriteString(prefill("`investment_timeframe` (required): When would the investment be made?", p.InvestmentTimeframe))
	b.WriteString(prefill("`decision_makers` (required): Who approves the budget?", p.DecisionMakers))
	b.WriteString(prefill("`previous_investments`: Prior technology or consulting investments.", p.PreviousInvestments))
	b.WriteString(prefill("`expected_roi`: What return is expected?", p.ExpectedROI))
	b.WriteString(prefill("`evidence_requirements` (required): What evidence does the client need to decide?", p.EvidenceRequirements))
	return b.String()
}

// renderStatus renders the full state of the wizard.
func renderStatus(step assessment.Step, a *assessment.ClientAssessment) string {
	var b strings.Builder
	b.WriteString("# Assessment Status\n\n")
	fmt.Fprintf(&b, "**Client:** `%s`\n", a.ClientID)
	fmt.Fprintf(&b, "**Step:** %s\n", stepLabels[step])
	fmt.Fprintf(&b, "**Business phase:** %d (%s)\n\n", a.CurrentPhase, assessment.PhaseName(a.CurrentPhase))

	b.WriteString("## Progress\n\n")
	b.WriteString(renderProgress(step))
	b.WriteString("\n")

	b.WriteString("| Phase | Answers |\n")
	b.WriteString("|-------|---------|\n")
	fmt.Fprintf(&b, "| 1 | %s |\n", completion(a.Phase1 != nil, phaseOneProgress(a.Phase1)))
	fmt.Fprintf(&b, "| 2 | %s |\n", completion(a.Phase2 != nil, painPointCount(a.Phase2)))
	fmt.Fprintf(&b, "| 3 | %s |\n", completion(a.Phase3 != nil, phaseThreeProgress(a.Phase3)))
	b.WriteString("\n")

	b.WriteString(report.Result(a))
	b.WriteString("## Next Step\n\n")
	b.WriteString(renderNextStep(step, a))
	return b.String()
}

func completion(done bool, detail string) string {
	if !done {
		return "not answered"
	}
	return "saved, " + detail
}

func phaseOneProgress(p *assessment.PhaseOneAnswers) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d%% of fields filled", p.Progress())
}

func phaseThreeProgress(p *assessment.PhaseThreeAnswers) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d%% of fields filled", p.Progress())
}

func painPointCount(p *assessment.PhaseTwoAnswers) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d of %d stages with pain points", len(p.PainPoints), len(assessment.StageOrder))
}
