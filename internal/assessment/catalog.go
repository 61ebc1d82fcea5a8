package assessment

// ServiceTier describes one fixed service package.
type ServiceTier struct {
	ID          TierID   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Range       string   `json:"range,omitempty"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// tierCatalog is static configuration. Access goes through Tier/Tiers,
// which hand out copies.
var tierCatalog = map[TierID]ServiceTier{
	TierAdvisory: {
		ID:          TierAdvisory,
		Name:        "AI Advisory",
		Price:       "$2,490",
		Description: "Strategic AI consultation and roadmap development",
		Features: []string{
			"Business challenge assessment",
			"AI opportunity identification",
			"Strategic roadmap creation",
			"Implementation guidance",
		},
	},
	TierDiscovery: {
		ID:          TierDiscovery,
		Name:        "Discovery",
		Price:       "$15K-25K",
		Range:       "$15,000 - $25,000",
		Description: "Comprehensive business analysis and solution design",
		Features: []string{
			"Deep-dive business analysis",
			"Technical feasibility study",
			"Solution architecture design",
			"ROI modeling with evidence",
		},
	},
	TierImplementation: {
		ID:          TierImplementation,
		Name:        "Implementation",
		Price:       "$35K-75K",
		Range:       "$35,000 - $75,000",
		Description: "Full solution development and deployment",
		Features: []string{
			"Custom solution development",
			"Integration with existing systems",
			"Testing and quality assurance",
			"Deployment and optimization",
		},
	},
}

// TierOrder is the display order of the service tiers.
var TierOrder = []TierID{TierAdvisory, TierDiscovery, TierImplementation}

// Tier returns the catalog entry for id.
func Tier(id TierID) (ServiceTier, bool) {
	t, ok := tierCatalog[id]
	if !ok {
		return ServiceTier{}, false
	}
	t.Features = append([]string(nil), t.Features...)
	return t, true
}

// Tiers returns every catalog entry in display order.
func Tiers() []ServiceTier {
	out := make([]ServiceTier, 0, len(TierOrder))
	for _, id := range TierOrder {
		t, _ := Tier(id)
		out = append(out, t)
	}
	return out
}

// ValidateTier returns an error if the tier is not in the catalog.
func ValidateTier(id TierID) error {
	if _, ok := tierCatalog[id]; !ok {
		return &FieldError{Field: "tier", Message: "must be one of: advisory, discovery, implementation"}
	}
	return nil
}

// tierTerms holds the per-tier figures the ROI projector uses.
type tierTerms struct {
	cost        float64
	improvement float64
	timeToValue int
}

var tierTermsTable = map[TierID]tierTerms{
	TierImplementation: {cost: 55000, improvement: 0.40, timeToValue: 6},
	TierDiscovery:      {cost: 20000, improvement: 0.30, timeToValue: 4},
	TierAdvisory:       {cost: 2490, improvement: 0.20, timeToValue: 2},
}

// resolveTier maps unknown or empty tiers to advisory.
func resolveTier(id TierID) TierID {
	if _, ok := tierTermsTable[id]; ok {
		return id
	}
	return TierAdvisory
}

// ServiceCost returns the fixed investment figure for a tier.
// Unrecognized tiers cost the same as advisory.
func ServiceCost(id TierID) float64 {
	return tierTermsTable[resolveTier(id)].cost
}

// --- Phase metadata ---

// PhaseInfo describes one of the five business phases.
type PhaseInfo struct {
	Phase              int      `json:"phase"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	CompletionCriteria []string `json:"completionCriteria"`
	CollectsData       bool     `json:"collectsData"`
}

var phaseCatalog = map[int]PhaseInfo{
	1: {
		Phase:       1,
		Name:        "Open-ended Business Exploration",
		Description: "Professional challenge assessment and opportunity identification",
		CompletionCriteria: []string{
			"Initial business context understood",
			"Key stakeholders identified",
			"Primary challenges documented",
			"Exploration questions answered",
		},
		CollectsData: true,
	},
	2: {
		Phase:       2,
		Name:        "Systematic Business Intelligence",
		Description: "5-stage pain point analysis and prioritization",
		CompletionCriteria: []string{
			"Pain points identified across 5 stages",
			"Impact assessment completed",
			"Priority matrix established",
			"Solution opportunities mapped",
		},
		CollectsData: true,
	},
	3: {
		Phase:       3,
		Name:        "Investment Capacity Qualification",
		Description: "Evidence-first methodology for budget validation",
		CompletionCriteria: []string{
			"Budget parameters established",
			"Evidence gathered and validated",
			"Investment capacity confirmed",
			"Service tier alignment completed",
		},
		CollectsData: true,
	},
	4: {
		Phase:       4,
		Name:        "Solution Design",
		Description: "Technical architecture and implementation planning",
		CompletionCriteria: []string{
			"Technical requirements documented",
			"Architecture design completed",
			"Implementation timeline created",
			"Resource allocation planned",
		},
	},
	5: {
		Phase:       5,
		Name:        "Human Handoff Preparation",
		Description: "Constitutional compliance documentation and transition",
		CompletionCriteria: []string{
			"Compliance documentation complete",
			"Handoff materials prepared",
			"Stakeholder briefing conducted",
			"Transition plan executed",
		},
	},
}

// Phases returns the five business phases in order.
func Phases() []PhaseInfo {
	out := make([]PhaseInfo, 0, len(phaseCatalog))
	for i := 1; i <= len(phaseCatalog); i++ {
		p := phaseCatalog[i]
		p.CompletionCriteria = append([]string(nil), p.CompletionCriteria...)
		out = append(out, p)
	}
	return out
}

// PhaseName returns the display name of a phase, or "" if unknown.
func PhaseName(phase int) string {
	return phaseCatalog[phase].Name
}

// --- Stage metadata ---

// StageInfo is the display metadata of a pain-point stage.
type StageInfo struct {
	Stage       Stage  `json:"stage"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var stageCatalog = map[Stage]StageInfo{
	StageDiscovery:      {Stage: StageDiscovery, Name: "Discovery & Assessment", Description: "Identifying and understanding problems"},
	StageAnalysis:       {Stage: StageAnalysis, Name: "Analysis & Prioritization", Description: "Evaluating impact and urgency"},
	StagePlanning:       {Stage: StagePlanning, Name: "Solution Planning", Description: "Developing intervention strategies"},
	StageImplementation: {Stage: StageImplementation, Name: "Implementation & Execution", Description: "Deploying solutions effectively"},
	StageMonitoring:     {Stage: StageMonitoring, Name: "Monitoring & Optimization", Description: "Tracking results and improvements"},
}

// StageDetails returns the display metadata for a stage.
func StageDetails(s Stage) (StageInfo, bool) {
	info, ok := stageCatalog[s]
	return info, ok
}

// --- Constitutional requirements ---

// ComplianceCheck names one of the four declarative policy checks.
type ComplianceCheck string

const (
	CheckServiceBoundary       ComplianceCheck = "serviceBoundary"
	CheckEvidenceProtocol      ComplianceCheck = "evidenceProtocol"
	CheckProfessionalStandards ComplianceCheck = "professionalStandards"
	CheckQualityAssurance      ComplianceCheck = "qualityAssurance"
)

// ComplianceOrder is the display order of the compliance checks.
var ComplianceOrder = []ComplianceCheck{
	CheckServiceBoundary,
	CheckEvidenceProtocol,
	CheckProfessionalStandards,
	CheckQualityAssurance,
}

// Requirement describes a constitutional requirement.
type Requirement struct {
	Check           ComplianceCheck `json:"check"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ValidationRules []string        `json:"validationRules"`
}

var requirementCatalog = map[ComplianceCheck]Requirement{
	CheckServiceBoundary: {
		Check:       CheckServiceBoundary,
		Name:        "Service Boundary Enforcement",
		Description: "Ensures all services stay within defined tiers and pricing",
		ValidationRules: []string{
			"Service must align with one of three tiers",
			"Pricing must match tier guidelines",
			"No custom pricing without evidence",
			"Clear tier progression path",
		},
	},
	CheckEvidenceProtocol: {
		Check:       CheckEvidenceProtocol,
		Name:        "Evidence-first Protocol",
		Description: "No ROI calculations without actual client data",
		ValidationRules: []string{
			"All claims must be evidence-based",
			"Client data required for projections",
			"Historical performance documented",
			"Benchmarks properly sourced",
		},
	},
	CheckProfessionalStandards: {
		Check:       CheckProfessionalStandards,
		Name:        "Professional Business Standards",
		Description: "Business optimization focus only",
		ValidationRules: []string{
			"Business value clearly articulated",
			"Professional language maintained",
			"Focus on optimization outcomes",
			"Avoid technical jargon",
		},
	},
	CheckQualityAssurance: {
		Check:       CheckQualityAssurance,
		Name:        "Quality Assurance Monitoring",
		Description: "Constitutional compliance tracking",
		ValidationRules: []string{
			"Regular compliance audits",
			"Violation tracking and remediation",
			"Performance metrics monitoring",
			"Continuous improvement process",
		},
	},
}

// Requirements returns the constitutional requirements in display order.
func Requirements() []Requirement {
	out := make([]Requirement, 0, len(ComplianceOrder))
	for _, c := range ComplianceOrder {
		r := requirementCatalog[c]
		r.ValidationRules = append([]string(nil), r.ValidationRules...)
		out = append(out, r)
	}
	return out
}
