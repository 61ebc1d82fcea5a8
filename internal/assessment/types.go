// Package assessment implements the business-assessment wizard core:
// the three questionnaire answer records, the service-tier classifier,
// the ROI projector and the flow controller that sequences phases and
// persists the aggregate after every transition.
//
// Layout:
//   - types, answers: data only
//   - catalog: static lookup tables keyed by closed enums
//   - classify, roi: pure derivation functions
//   - flow: the transition table
//   - controller, repository: state ownership and persistence
package assessment

import (
	"fmt"
	"time"
)

// --- Pain-point stage enum ---

// Stage is one of the five fixed analysis stages a pain point belongs to.
type Stage string

const (
	StageDiscovery      Stage = "discovery"
	StageAnalysis       Stage = "analysis"
	StagePlanning       Stage = "planning"
	StageImplementation Stage = "implementation"
	StageMonitoring     Stage = "monitoring"
)

// StageOrder is the canonical order the questionnaire walks the stages in.
var StageOrder = []Stage{
	StageDiscovery,
	StageAnalysis,
	StagePlanning,
	StageImplementation,
	StageMonitoring,
}

// ValidateStage returns an error if the stage is not recognized.
func ValidateStage(s Stage) error {
	for _, known := range StageOrder {
		if s == known {
			return nil
		}
	}
	return fmt.Errorf("invalid stage %q: must be one of: discovery, analysis, planning, implementation, monitoring", s)
}

// --- Impact and frequency enums ---

// Impact is the severity of a pain point.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

var validImpacts = map[Impact]bool{
	ImpactLow:    true,
	ImpactMedium: true,
	ImpactHigh:   true,
}

// ValidateImpact returns an error if the impact level is not recognized.
func ValidateImpact(i Impact) error {
	if !validImpacts[i] {
		return fmt.Errorf("invalid impact %q: must be one of: low, medium, high", i)
	}
	return nil
}

// Frequency is how often a pain point occurs.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
)

var validFrequencies = map[Frequency]bool{
	FrequencyDaily:     true,
	FrequencyWeekly:    true,
	FrequencyMonthly:   true,
	FrequencyQuarterly: true,
}

// ValidateFrequency returns an error if the frequency is not recognized.
func ValidateFrequency(f Frequency) error {
	if !validFrequencies[f] {
		return fmt.Errorf("invalid frequency %q: must be one of: daily, weekly, monthly, quarterly", f)
	}
	return nil
}

// --- Service tier enum ---

// TierID identifies one of the three fixed service packages.
type TierID string

const (
	TierAdvisory       TierID = "advisory"
	TierDiscovery      TierID = "discovery"
	TierImplementation TierID = "implementation"
)

// --- Aggregate ---

// EvidenceSource is a tagged reference to the narrative answer that
// backs an ROI projection.
type EvidenceSource struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Source    string    `json:"source"`
	Phase     int       `json:"phase"`
	Validated bool      `json:"validated"`
	Timestamp time.Time `json:"timestamp"`
	Data      string    `json:"data"`
}

// ROIAssessment is the projected return derived from the three phases.
type ROIAssessment struct {
	ProjectedValue     float64          `json:"projectedValue"`
	InvestmentRequired float64          `json:"investmentRequired"`
	TimeToValue        int              `json:"timeToValue"` // months
	ConfidenceLevel    int              `json:"confidenceLevel"`
	EvidenceSources    []EvidenceSource `json:"evidenceSources"`
	Assumptions        []string         `json:"assumptions"`
	Recommendations    []string         `json:"recommendations"`
}

// ClientAssessment is the aggregate root persisted between sessions.
// Phase answers are nil until the phase is completed; ServiceTier,
// ROIAssessment and CompletedAt are set together when phase 3 completes.
type ClientAssessment struct {
	ClientID      string             `json:"clientId"`
	Phase1        *PhaseOneAnswers   `json:"phase1"`
	Phase2        *PhaseTwoAnswers   `json:"phase2"`
	Phase3        *PhaseThreeAnswers `json:"phase3"`
	CurrentPhase  int                `json:"currentPhase"`
	ServiceTier   *TierID            `json:"serviceTier"`
	ROIAssessment *ROIAssessment     `json:"roiAssessment"`
	CompletedAt   *time.Time         `json:"completedAt"`
}

// NewClientAssessment returns an empty assessment for the given client id.
func NewClientAssessment(clientID string) *ClientAssessment {
	return &ClientAssessment{
		ClientID:     clientID,
		CurrentPhase: 1,
	}
}

// IsComplete reports whether the derived result is available.
func (a *ClientAssessment) IsComplete() bool {
	return a.ServiceTier != nil && a.ROIAssessment != nil && a.CompletedAt != nil
}

// Clone returns a deep copy so callers cannot mutate controller state.
func (a *ClientAssessment) Clone() *ClientAssessment {
	if a == nil {
		return nil
	}
	out := *a
	if a.Phase1 != nil {
		p := *a.Phase1
		out.Phase1 = &p
	}
	if a.Phase2 != nil {
		p := a.Phase2.clone()
		out.Phase2 = &p
	}
	if a.Phase3 != nil {
		p := *a.Phase3
		out.Phase3 = &p
	}
	if a.ServiceTier != nil {
		t := *a.ServiceTier
		out.ServiceTier = &t
	}
	if a.ROIAssessment != nil {
		r := *a.ROIAssessment
		r.EvidenceSources = append([]EvidenceSource(nil), a.ROIAssessment.EvidenceSources...)
		r.Assumptions = append([]string(nil), a.ROIAssessment.Assumptions...)
		r.Recommendations = append([]string(nil), a.ROIAssessment.Recommendations...)
		out.ROIAssessment = &r
	}
	if a.CompletedAt != nil {
		c := *a.CompletedAt
		out.CompletedAt = &c
	}
	return &out
}
