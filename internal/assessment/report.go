package assessment

import (
	"encoding/json"
	"fmt"
	"time"
)

// ComplianceAttestation is the declarative set of policy checks attached
// to every exported report. All four are always true; nothing enforces them.
type ComplianceAttestation struct {
	ServiceBoundaryEnforced bool `json:"serviceBoundaryEnforced"`
	EvidenceFirstProtocol   bool `json:"evidenceFirstProtocol"`
	ProfessionalStandards   bool `json:"professionalStandards"`
	QualityAssurance        bool `json:"qualityAssurance"`
}

// Report is the downloadable assessment document.
type Report struct {
	Assessment               *ClientAssessment     `json:"assessment"`
	GeneratedAt              time.Time             `json:"generatedAt"`
	ConstitutionalCompliance ComplianceAttestation `json:"constitutionalCompliance"`
}

// NewReport wraps an assessment into a report stamped with the current time.
func NewReport(a *ClientAssessment) Report {
	return Report{
		Assessment:  a,
		GeneratedAt: timeNow(),
		ConstitutionalCompliance: ComplianceAttestation{
			ServiceBoundaryEnforced: true,
			EvidenceFirstProtocol:   true,
			ProfessionalStandards:   true,
			QualityAssurance:        true,
		},
	}
}

// JSON returns the report as an indented JSON document.
func (r Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return data, nil
}

// ReportFilename returns the download filename for a client's report.
func ReportFilename(clientID string) string {
	return fmt.Sprintf("constitutional-compliance-assessment-%s.json", clientID)
}
