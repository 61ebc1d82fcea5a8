package tools

import (
	"github.com/HendryAvila/assessor/internal/assessment"
	"github.com/HendryAvila/assessor/internal/report"
	"go.uber.org/zap"
)

// CompletionObserver is notified when an assessment reaches the result
// step. It's an optional dependency: tools work fine with a nil observer.
type CompletionObserver interface {
	OnAssessmentComplete(r assessment.Report)
}

// ReportBridge writes the JSON report to the export directory every time
// an assessment completes, so a finished assessment is on disk even if
// nobody calls assessment_export.
type ReportBridge struct {
	exporter ReportExporter
	logger   *zap.Logger
}

// NewReportBridge creates a bridge that auto-exports completed
// assessments. Returns nil if exporter is nil.
func NewReportBridge(exporter ReportExporter, logger *zap.Logger) *ReportBridge {
	if exporter == nil {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportBridge{exporter: exporter, logger: logger}
}

// OnAssessmentComplete exports the report. Best-effort: failures are
// logged and do not fail the phase-3 submission.
func (b *ReportBridge) OnAssessmentComplete(r assessment.Report) {
	path, err := b.exporter.Export(r, report.FormatJSON)
	if err != nil {
		b.logger.Warn("auto-export failed", zap.Error(err))
		return
	}
	b.logger.Info("report auto-exported", zap.String("path", path))
}
