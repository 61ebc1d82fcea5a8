// Package report renders and exports assessment reports.
//
// Markdown produces the human-readable summary used by the MCP tools and
// the HTML export. Exporter writes report files to disk.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/HendryAvila/assessor/internal/assessment"
)

// Currency formats a dollar amount with thousands separators, e.g. $12,000.
// Fractions are rounded to whole dollars.
func Currency(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// Placeholder is shown when an assessment has no result yet.
const Placeholder = "Complete assessment phases to see results"

// Markdown renders a report as a markdown document.
func Markdown(r assessment.Report) string {
	var b strings.Builder
	a := r.Assessment

	b.WriteString("# Constitutional Compliance Assessment\n\n")
	if a == nil {
		b.WriteString(Placeholder + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "**Client:** `%s`\n", a.ClientID)
	fmt.Fprintf(&b, "**Generated:** %s\n", r.GeneratedAt.Format("January 2, 2006 15:04 MST"))
	if a.CompletedAt != nil {
		fmt.Fprintf(&b, "**Completed:** %s\n", a.CompletedAt.Format("January 2, 2006 15:04 MST"))
	}
	b.WriteString("\n")

	b.WriteString(Result(a))
	b.WriteString(Answers(a))

	b.WriteString("## Constitutional Compliance\n\n")
	checks := []struct {
		name string
		ok   bool
	}{
		{"Service Boundary Enforcement", r.ConstitutionalCompliance.ServiceBoundaryEnforced},
		{"Evidence-first Protocol", r.ConstitutionalCompliance.EvidenceFirstProtocol},
		{"Professional Business Standards", r.ConstitutionalCompliance.ProfessionalStandards},
		{"Quality Assurance Monitoring", r.ConstitutionalCompliance.QualityAssurance},
	}
	for _, c := range checks {
		mark := " "
		if c.ok {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, c.name)
	}
	return b.String()
}

// Result renders the recommended tier and ROI projection, or the
// placeholder when either is missing.
func Result(a *assessment.ClientAssessment) string {
	var b strings.Builder
	b.WriteString("## Recommended Service Tier\n\n")
	if a == nil || a.ServiceTier == nil || a.ROIAssessment == nil {
		b.WriteString("_" + Placeholder + "_\n\n")
		return b.String()
	}

	tier, ok := assessment.Tier(*a.ServiceTier)
	if !ok {
		tier, _ = assessment.Tier(assessment.TierAdvisory)
	}
	fmt.Fprintf(&b, "### %s (%s)\n\n%s\n\n", tier.Name, tier.Price, tier.Description)
	for _, f := range tier.Features {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	b.WriteString("\n")

	roi := a.ROIAssessment
	b.WriteString("## ROI Projection\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Projected annual value | %s |\n", Currency(roi.ProjectedValue))
	fmt.Fprintf(&b, "| Investment required | %s |\n", Currency(roi.InvestmentRequired))
	fmt.Fprintf(&b, "| Time to value | %d months |\n", roi.TimeToValue)
	fmt.Fprintf(&b, "| Confidence | %d%% |\n", roi.ConfidenceLevel)
	if roi.InvestmentRequired > 0 {
		fmt.Fprintf(&b, "| Return multiple | %.1fx |\n", roi.ProjectedValue/roi.InvestmentRequired)
	}
	b.WriteString("\n")

	if len(roi.EvidenceSources) > 0 {
		b.WriteString("### Evidence Sources\n\n")
		for _, src := range roi.EvidenceSources {
			validated := ""
			if src.Validated {
				validated = " (validated)"
			}
			fmt.Fprintf(&b, "- %s%s\n", src.Source, validated)
		}
		b.WriteString("\n")
	}
	writeList(&b, "### Assumptions", roi.Assumptions)
	writeList(&b, "### Recommendations", roi.Recommendations)
	return b.String()
}

// Answers renders the stored questionnaire answers.
func Answers(a *assessment.ClientAssessment) string {
	if a == nil {
		return ""
	}
	var b strings.Builder

	if p := a.Phase1; p != nil {
		fmt.Fprintf(&b, "## Phase 1: %s\n\n", assessment.PhaseName(1))
		writeFields(&b, [][2]string{
			{"Business context", p.BusinessContext},
			{"Primary challenges", p.PrimaryChallenges},
			{"Current solutions", p.CurrentSolutions},
			{"Key stakeholders", p.KeyStakeholders},
			{"Success metrics", p.SuccessMetrics},
			{"Timeline", p.Timeline},
		})
	}

	if p := a.Phase2; p != nil {
		fmt.Fprintf(&b, "## Phase 2: %s\n\n", assessment.PhaseName(2))
		if len(p.PainPoints) > 0 {
			b.WriteString("| Stage | Description | Impact | Frequency | Cost | Priority |\n")
			b.WriteString("|-------|-------------|--------|-----------|------|----------|\n")
			for _, stage := range assessment.StageOrder {
				pp, ok := p.PainPointFor(stage)
				if !ok {
					continue
				}
				name := string(stage)
				if info, ok := assessment.StageDetails(stage); ok {
					name = info.Name
				}
				priority := "—"
				if rank, ok := p.PriorityMatrix[stage]; ok {
					priority = fmt.Sprintf("%d", rank)
				}
				fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
					name, cell(pp.Description), pp.Impact, pp.Frequency, cell(pp.Cost), priority)
			}
			b.WriteString("\n")
		}
		writeFields(&b, [][2]string{
			{"Business impact", p.BusinessImpact},
			{"Resource constraints", p.ResourceConstraints},
		})
	}

	if p := a.Phase3; p != nil {
		fmt.Fprintf(&b, "## Phase 3: %s\n\n", assessment.PhaseName(3))
		writeFields(&b, [][2]string{
			{"Budget range", p.BudgetRange},
			{"Investment timeframe", p.InvestmentTimeframe},
			{"Decision makers", p.DecisionMakers},
			{"Previous investments", p.PreviousInvestments},
			{"Expected ROI", p.ExpectedROI},
			{"Evidence requirements", p.EvidenceRequirements},
		})
	}
	return b.String()
}

func writeFields(b *strings.Builder, fields [][2]string) {
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			continue
		}
		fmt.Fprintf(b, "**%s:** %s\n\n", f[0], strings.TrimSpace(f[1]))
	}
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(heading + "\n\n")
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}

// cell makes free text safe inside a markdown table cell.
func cell(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "—"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
