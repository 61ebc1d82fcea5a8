package assessment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport_Attestation(t *testing.T) {
	r := NewReport(NewClientAssessment("c-1"))
	assert.Equal(t, frozenNow, r.GeneratedAt)
	assert.Equal(t, ComplianceAttestation{
		ServiceBoundaryEnforced: true,
		EvidenceFirstProtocol:   true,
		ProfessionalStandards:   true,
		QualityAssurance:        true,
	}, r.ConstitutionalCompliance)
}

func TestReport_JSONShape(t *testing.T) {
	data, err := NewReport(completedAssessment(t)).JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"assessment\"")

	var doc struct {
		Assessment               map[string]any  `json:"assessment"`
		GeneratedAt              string          `json:"generatedAt"`
		ConstitutionalCompliance map[string]bool `json:"constitutionalCompliance"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "2026-03-02T09:30:00Z", doc.GeneratedAt)
	assert.Len(t, doc.ConstitutionalCompliance, 4)
	assert.Equal(t, "client-1", doc.Assessment["clientId"])
	assert.Contains(t, doc.Assessment, "roiAssessment")
}

func TestReportFilename(t *testing.T) {
	assert.Equal(t, "constitutional-compliance-assessment-abc.json", ReportFilename("abc"))
}
