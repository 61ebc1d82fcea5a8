// Package resources implements MCP resource handlers for the assessment.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (assessment://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HendryAvila/assessor/internal/assessment"
	"github.com/mark3labs/mcp-go/mcp"
)

// StateReader exposes the current wizard state. *assessment.Controller
// implements it.
type StateReader interface {
	Snapshot() (assessment.Step, *assessment.ClientAssessment)
}

// Handler manages assessment resource endpoints.
type Handler struct {
	state StateReader
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(state StateReader) *Handler {
	return &Handler{state: state}
}

// currentState is the payload of assessment://current.
type currentState struct {
	Step       assessment.Step              `json:"step"`
	Complete   bool                         `json:"complete"`
	Assessment *assessment.ClientAssessment `json:"assessment"`
}

// CurrentResource returns the definition of the current assessment resource.
func (h *Handler) CurrentResource() mcp.Resource {
	return mcp.NewResource(
		"assessment://current",
		"Current Assessment",
		mcp.WithResourceDescription("The in-progress assessment with its flow step, answers, tier and ROI"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleCurrent returns the current assessment as JSON.
func (h *Handler) HandleCurrent(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	step, a := h.state.Snapshot()
	return jsonResource(req.Params.URI, currentState{
		Step:       step,
		Complete:   a.IsComplete(),
		Assessment: a,
	})
}

// TiersResource returns the definition of the service tier catalog resource.
func (h *Handler) TiersResource() mcp.Resource {
	return mcp.NewResource(
		"assessment://tiers",
		"Service Tiers",
		mcp.WithResourceDescription("The three service tiers with pricing and features"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleTiers returns the tier catalog.
func (h *Handler) HandleTiers(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, assessment.Tiers())
}

// phaseCatalog is the payload of assessment://phases.
type phaseCatalog struct {
	Phases        []assessment.PhaseInfo    `json:"phases"`
	Stages        []assessment.StageInfo    `json:"stages"`
	BudgetOptions []assessment.BudgetOption `json:"budgetOptions"`
}

// PhasesResource returns the definition of the phase metadata resource.
func (h *Handler) PhasesResource() mcp.Resource {
	return mcp.NewResource(
		"assessment://phases",
		"Assessment Phases",
		mcp.WithResourceDescription("The five business phases, the pain-point stages and the budget options"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandlePhases returns the phase, stage and budget catalogs.
func (h *Handler) HandlePhases(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	stages := make([]assessment.StageInfo, 0, len(assessment.StageOrder))
	for _, s := range assessment.StageOrder {
		if info, ok := assessment.StageDetails(s); ok {
			stages = append(stages, info)
		}
	}
	return jsonResource(req.Params.URI, phaseCatalog{
		Phases:        assessment.Phases(),
		Stages:        stages,
		BudgetOptions: assessment.BudgetOptions,
	})
}

// ComplianceResource returns the definition of the constitutional requirements resource.
func (h *Handler) ComplianceResource() mcp.Resource {
	return mcp.NewResource(
		"assessment://compliance",
		"Constitutional Requirements",
		mcp.WithResourceDescription("The four constitutional requirements attested in every report"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleCompliance returns the constitutional requirements.
func (h *Handler) HandleCompliance(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, assessment.Requirements())
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
