package assessment

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError reports a single missing or invalid questionnaire field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors unpacks a joined validation error into its field errors.
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}
	var out []*FieldError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, FieldErrors(e)...)
		}
		return out
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		out = append(out, fe)
	}
	return out
}

func required(field, value, message string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: message}
	}
	return nil
}

// --- Phase 1 ---

// PhaseOneAnswers captures the open-ended business exploration.
type PhaseOneAnswers struct {
	BusinessContext   string `json:"businessContext"`
	PrimaryChallenges string `json:"primaryChallenges"`
	CurrentSolutions  string `json:"currentSolutions"`
	KeyStakeholders   string `json:"keyStakeholders"`
	SuccessMetrics    string `json:"successMetrics"`
	Timeline          string `json:"timeline"`
}

// Validate checks the required phase-1 fields.
func (p PhaseOneAnswers) Validate() error {
	return errors.Join(
		required("businessContext", p.BusinessContext, "Business context is required"),
		required("primaryChallenges", p.PrimaryChallenges, "Primary challenges are required"),
		required("keyStakeholders", p.KeyStakeholders, "Key stakeholders are required"),
	)
}

// Progress returns the share of filled fields as a percentage.
func (p PhaseOneAnswers) Progress() int {
	return progress(p.BusinessContext, p.PrimaryChallenges, p.CurrentSolutions,
		p.KeyStakeholders, p.SuccessMetrics, p.Timeline)
}

// --- Phase 2 ---

// PainPoint is an operational problem tied to one analysis stage.
type PainPoint struct {
	Stage       Stage     `json:"stage"`
	Description string    `json:"description"`
	Impact      Impact    `json:"impact"`
	Frequency   Frequency `json:"frequency"`
	Cost        string    `json:"cost"` // e.g. "$5K/month"
}

// PhaseTwoAnswers captures the five-stage pain-point analysis.
type PhaseTwoAnswers struct {
	PainPoints          []PainPoint   `json:"painPoints"`
	PriorityMatrix      map[Stage]int `json:"priorityMatrix"`
	BusinessImpact      string        `json:"businessImpact"`
	ResourceConstraints string        `json:"resourceConstraints"`
}

// Validate checks pain-point stages, priorities and the required
// business impact. At least one pain point must be recorded.
func (p PhaseTwoAnswers) Validate() error {
	var errs []error
	if len(p.PainPoints) == 0 {
		errs = append(errs, &FieldError{Field: "painPoints", Message: "At least one pain point is required"})
	}
	seen := make(map[Stage]bool, len(p.PainPoints))
	for i, pp := range p.PainPoints {
		field := fmt.Sprintf("painPoints[%d]", i)
		if err := ValidateStage(pp.Stage); err != nil {
			errs = append(errs, &FieldError{Field: field + ".stage", Message: err.Error()})
		} else if seen[pp.Stage] {
			errs = append(errs, &FieldError{Field: field + ".stage", Message: fmt.Sprintf("duplicate pain point for stage %q", pp.Stage)})
		}
		seen[pp.Stage] = true
		if strings.TrimSpace(pp.Description) == "" {
			errs = append(errs, &FieldError{Field: field + ".description", Message: "Pain point description is required"})
		}
		if err := ValidateImpact(pp.Impact); err != nil {
			errs = append(errs, &FieldError{Field: field + ".impact", Message: err.Error()})
		}
		if err := ValidateFrequency(pp.Frequency); err != nil {
			errs = append(errs, &FieldError{Field: field + ".frequency", Message: err.Error()})
		}
	}
	for stage, rank := range p.PriorityMatrix {
		if err := ValidateStage(stage); err != nil {
			errs = append(errs, &FieldError{Field: "priorityMatrix", Message: err.Error()})
			continue
		}
		if rank < 1 || rank > 5 {
			errs = append(errs, &FieldError{
				Field:   "priorityMatrix." + string(stage),
				Message: fmt.Sprintf("priority must be between 1 and 5, got %d", rank),
			})
		}
	}
	errs = append(errs, required("businessImpact", p.BusinessImpact, "Business impact assessment is required"))
	return errors.Join(errs...)
}

// PainPointFor returns the pain point recorded for a stage, if any.
func (p PhaseTwoAnswers) PainPointFor(stage Stage) (PainPoint, bool) {
	for _, pp := range p.PainPoints {
		if pp.Stage == stage {
			return pp, true
		}
	}
	return PainPoint{}, false
}

func (p PhaseTwoAnswers) clone() PhaseTwoAnswers {
	out := p
	out.PainPoints = append([]PainPoint(nil), p.PainPoints...)
	if p.PriorityMatrix != nil {
		out.PriorityMatrix = make(map[Stage]int, len(p.PriorityMatrix))
		for k, v := range p.PriorityMatrix {
			out.PriorityMatrix[k] = v
		}
	}
	return out
}

// UpsertPainPoint returns points with p replacing any entry for the same
// stage. New stages are appended, so at most one entry per stage exists.
func UpsertPainPoint(points []PainPoint, p PainPoint) []PainPoint {
	out := make([]PainPoint, 0, len(points)+1)
	for _, existing := range points {
		if existing.Stage != p.Stage {
			out = append(out, existing)
		}
	}
	return append(out, p)
}

// --- Phase 3 ---

// BudgetOther is the budget choice that switches to free-text entry.
const BudgetOther = "other"

// BudgetOption is one of the canned budget choices.
type BudgetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// BudgetOptions lists the canned budget choices in display order.
var BudgetOptions = []BudgetOption{
	{Value: "$2,490", Label: "$2,490 (Advisory Tier)"},
	{Value: "$15,000-25,000", Label: "$15K-25K (Discovery Tier)"},
	{Value: "$35,000-75,000", Label: "$35K-75K (Implementation Tier)"},
	{Value: "$75,000+", Label: "$75K+ (Custom Engagement)"},
	{Value: BudgetOther, Label: "Other Amount"},
}

// ResolveBudget maps a budget choice to the stored budget text. Choosing
// "other" stores the free-text amount instead.
func ResolveBudget(choice, other string) string {
	if strings.TrimSpace(choice) == BudgetOther {
		return strings.TrimSpace(other)
	}
	return strings.TrimSpace(choice)
}

// PhaseThreeAnswers captures the investment capacity qualification.
type PhaseThreeAnswers struct {
	BudgetRange          string `json:"budgetRange"`
	InvestmentTimeframe  string `json:"investmentTimeframe"`
	DecisionMakers       string `json:"decisionMakers"`
	PreviousInvestments  string `json:"previousInvestments"`
	ExpectedROI          string `json:"expectedROI"`
	EvidenceRequirements string `json:"evidenceRequirements"`
}

// Validate checks the required phase-3 fields.
func (p PhaseThreeAnswers) Validate() error {
	return errors.Join(
		required("budgetRange", p.BudgetRange, "Budget range is required"),
		required("investmentTimeframe", p.InvestmentTimeframe, "Investment timeframe is required"),
		required("decisionMakers", p.DecisionMakers, "Decision makers information is required"),
		required("evidenceRequirements", p.EvidenceRequirements, "Evidence requirements are required"),
	)
}

// Progress returns the share of filled fields as a percentage.
func (p PhaseThreeAnswers) Progress() int {
	return progress(p.BudgetRange, p.InvestmentTimeframe, p.DecisionMakers,
		p.PreviousInvestments, p.ExpectedROI, p.EvidenceRequirements)
}

func progress(fields ...string) int {
	filled := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			filled++
		}
	}
	return filled * 100 / len(fields)
}
