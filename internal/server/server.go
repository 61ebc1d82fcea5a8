// Package server wires all MCP components and creates the server instance.
//
// This is the composition root (DIP): it creates concrete implementations
// and injects them into the tools/prompts/resources that depend on abstractions.
// No business logic lives here, only wiring.
package server

import (
	"fmt"

	"github.com/HendryAvila/assessor/internal/assessment"
	"github.com/HendryAvila/assessor/internal/config"
	"github.com/HendryAvila/assessor/internal/prompts"
	"github.com/HendryAvila/assessor/internal/report"
	"github.com/HendryAvila/assessor/internal/resources"
	"github.com/HendryAvila/assessor/internal/storage"
	"github.com/HendryAvila/assessor/internal/tools"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

// OpenController opens the configured store and rehydrates the
// assessment from it. The returned cleanup closes the store; it is
// always non-nil and safe to call.
func OpenController(cfg *config.Config, logger *zap.Logger) (*assessment.Controller, func(), error) {
	store, err := storage.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return nil, noop, fmt.Errorf("opening %s store: %w", cfg.Backend, err)
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing store", zap.Error(err))
		}
	}

	ctrl := assessment.NewController(
		assessment.NewRepository(store),
		assessment.WithLogger(logger.Named("assessment")),
	)
	return ctrl, cleanup, nil
}

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
//
// The returned cleanup function closes the store and must be called on
// shutdown (typically via defer).
func New(cfg *config.Config, logger *zap.Logger) (*server.MCPServer, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// --- Create shared dependencies ---

	ctrl, cleanup, err := OpenController(cfg, logger)
	if err != nil {
		return nil, noop, err
	}
	exporter := report.NewExporter(cfg.ExportDir)

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"assessor",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register flow tools ---

	startTool := tools.NewStartTool(ctrl)
	s.AddTool(startTool.Definition(), startTool.Handle)

	phaseOneTool := tools.NewPhaseOneTool(ctrl)
	s.AddTool(phaseOneTool.Definition(), phaseOneTool.Handle)

	phaseTwoTool := tools.NewPhaseTwoTool(ctrl)
	s.AddTool(phaseTwoTool.Definition(), phaseTwoTool.Handle)

	phaseThreeTool := tools.NewPhaseThreeTool(ctrl)
	s.AddTool(phaseThreeTool.Definition(), phaseThreeTool.Handle)

	backTool := tools.NewBackTool(ctrl)
	s.AddTool(backTool.Definition(), backTool.Handle)

	modifyTool := tools.NewModifyTool(ctrl)
	s.AddTool(modifyTool.Definition(), modifyTool.Handle)

	resetTool := tools.NewResetTool(ctrl)
	s.AddTool(resetTool.Definition(), resetTool.Handle)

	// --- Register read/export tools ---

	statusTool := tools.NewStatusTool(ctrl)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	exportTool := tools.NewExportTool(ctrl, exporter)
	s.AddTool(exportTool.Definition(), exportTool.Handle)

	consultationTool := tools.NewConsultationTool(ctrl)
	s.AddTool(consultationTool.Definition(), consultationTool.Handle)

	// --- Wire auto-export bridge ---
	//
	// When enabled, completing phase 3 writes the JSON report without an
	// explicit assessment_export call. Failures are logged only.
	if cfg.AutoExport {
		phaseThreeTool.SetObserver(tools.NewReportBridge(exporter, logger.Named("export")))
	}

	// --- Register prompts ---

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	statusPrompt := prompts.NewStatusPrompt()
	s.AddPrompt(statusPrompt.Definition(), statusPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(ctrl)
	s.AddResource(resourceHandler.CurrentResource(), resourceHandler.HandleCurrent)
	s.AddResource(resourceHandler.TiersResource(), resourceHandler.HandleTiers)
	s.AddResource(resourceHandler.PhasesResource(), resourceHandler.HandlePhases)
	s.AddResource(resourceHandler.ComplianceResource(), resourceHandler.HandleCompliance)

	logger.Info("server ready",
		zap.String("version", Version),
		zap.String("backend", string(cfg.Backend)),
		zap.String("data_dir", cfg.DataDir),
		zap.String("step", string(ctrl.Step())),
	)
	return s, cleanup, nil
}

// noop is the cleanup returned when nothing was opened.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to run the assessment.
func serverInstructions() string {
	return `You have access to Assessor, a constitutional business assessment wizard.

## WHEN TO USE Assessor

Use it when the user wants to evaluate a business for AI or process
improvement services: qualifying a prospect, scoping an engagement, or
estimating the return of an investment.

## CRITICAL: How Tools Work
Assessor tools are STORAGE tools, not AI tools. They save the client's
answers and compute the tier and ROI from them.

1. TALK to the client and ask the questions each step returns
2. CALL the phase tool with the client's ACTUAL answers
3. NEVER invent answers, costs or budgets. Evidence first: every ROI
   figure must rest on data the client provided

## Flow
landing -> phase 1 -> phase 2 -> phase 3 -> result

1. assessment_start: leave the landing step
2. assessment_phase1: business context, challenges, stakeholders (required)
3. assessment_phase2: at most one pain point per stage across discovery,
   analysis, planning, implementation and monitoring, plus business impact
4. assessment_phase3: budget choice, timeframe, decision makers, evidence needs.
   This classifies the budget into a service tier and projects the ROI
5. Results: assessment_export writes the report; assessment_modify revises
   an earlier phase; assessment_schedule_consultation returns a notice

assessment_back goes back one step and keeps answers. assessment_status
shows where the assessment stands; call it first when resuming.
assessment_reset discards everything and needs confirm=true: always ask
the user before calling it.

## Service tiers
- AI Advisory ($2,490): strategic consultation and roadmap
- Discovery ($15K-25K): business analysis and solution design
- Implementation ($35K-75K): full solution development and deployment

Read assessment://tiers, assessment://phases and assessment://compliance
for the full catalogs.`
}
