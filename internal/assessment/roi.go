package assessment

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// monthsPerYear annualizes pain-point costs, which are read as monthly.
	monthsPerYear = 12
	// minimumROIMultiple is the floor applied to the projected value.
	minimumROIMultiple = 2
	// evidenceFieldThreshold is the trimmed length a narrative answer
	// must exceed to count towards evidence quality.
	evidenceFieldThreshold = 50

	baseConfidence     = 60
	confidencePerField = 8
	maxConfidence      = 95
	evidenceTypeClient = "client-data"
)

// ProjectROI derives the ROI assessment from the three phases and the
// classified tier. Unknown or empty tiers use the advisory terms.
// Nil phase records are treated as empty answers.
func ProjectROI(p1 *PhaseOneAnswers, p2 *PhaseTwoAnswers, p3 *PhaseThreeAnswers, tier TierID) ROIAssessment {
	if p1 == nil {
		p1 = &PhaseOneAnswers{}
	}
	if p2 == nil {
		p2 = &PhaseTwoAnswers{}
	}
	if p3 == nil {
		p3 = &PhaseThreeAnswers{}
	}

	resolved := resolveTier(tier)
	terms := tierTermsTable[resolved]

	annualPainCost := AnnualPainPointCost(p2.PainPoints)
	projected := math.Max(annualPainCost*terms.improvement, terms.cost*minimumROIMultiple)

	now := timeNow()
	return ROIAssessment{
		ProjectedValue:     projected,
		InvestmentRequired: terms.cost,
		TimeToValue:        terms.timeToValue,
		ConfidenceLevel:    ConfidenceLevel(p1, p2, p3),
		EvidenceSources: []EvidenceSource{
			{ID: "1", Type: evidenceTypeClient, Source: "Phase 1: Business Context Analysis", Phase: 1, Validated: true, Timestamp: now, Data: p1.BusinessContext},
			{ID: "2", Type: evidenceTypeClient, Source: "Phase 2: Pain Point Analysis", Phase: 2, Validated: true, Timestamp: now, Data: p2.BusinessImpact},
			{ID: "3", Type: evidenceTypeClient, Source: "Phase 3: Investment Capacity", Phase: 3, Validated: true, Timestamp: now, Data: p3.BudgetRange},
		},
		Assumptions: []string{
			fmt.Sprintf("%d%% improvement in identified pain points", int(math.Round(terms.improvement*100))),
			fmt.Sprintf("Implementation timeline of %d months", terms.timeToValue),
			"Business context remains stable during engagement",
			"Stakeholder commitment maintained throughout process",
			"Resource constraints addressed as documented",
		},
		Recommendations: []string{
			fmt.Sprintf("Begin with %s engagement to validate opportunities", tierCatalog[resolved].Name),
			"Prioritize high-impact pain points identified in systematic analysis",
			"Establish baseline metrics before implementation begins",
			"Plan phased approach based on investment timeline requirements",
			"Schedule regular progress reviews with key stakeholders",
		},
	}
}

// AnnualPainPointCost sums every pain-point cost, annualized.
func AnnualPainPointCost(points []PainPoint) float64 {
	var total float64
	for _, p := range points {
		total += ParseCost(p.Cost) * monthsPerYear
	}
	return total
}

// ConfidenceLevel scores evidence quality: 60 plus 8 for each of the
// four tracked narrative fields longer than 50 characters, capped at 95.
func ConfidenceLevel(p1 *PhaseOneAnswers, p2 *PhaseTwoAnswers, p3 *PhaseThreeAnswers) int {
	count := 0
	for _, field := range []string{p1.BusinessContext, p1.PrimaryChallenges, p2.BusinessImpact, p3.BudgetRange} {
		if utf8.RuneCountInString(strings.TrimSpace(field)) > evidenceFieldThreshold {
			count++
		}
	}
	return min(maxConfidence, baseConfidence+count*confidencePerField)
}
