package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/assessor/internal/assessment"
	"github.com/HendryAvila/assessor/internal/report"
	"github.com/mark3labs/mcp-go/mcp"
)

// ReportExporter writes a report file and returns its path.
// *report.Exporter implements it.
type ReportExporter interface {
	Export(r assessment.Report, format report.Format) (string, error)
}

// ExportTool handles the assessment_export MCP tool.
type ExportTool struct {
	flow     Flow
	exporter ReportExporter
}

// NewExportTool creates an ExportTool.
func NewExportTool(flow Flow, exporter ReportExporter) *ExportTool {
	return &ExportTool{flow: flow, exporter: exporter}
}

// Definition returns the MCP tool definition for registration.
func (t *ExportTool) Definition() mcp.Tool {
	return mcp.NewTool("assessment_export",
		mcp.WithDescription(
			"Download the assessment report: the full assessment with a generation timestamp "+
				"and the constitutional compliance attestation. json writes the raw report; "+
				"html writes a printable summary. Returns the written file path.",
		),
		mcp.WithString("format",
			mcp.Description("Output format"),
			mcp.Enum(string(report.FormatJSON), string(report.FormatHTML)),
			mcp.DefaultString(string(report.FormatJSON)),
		),
	)
}

// Handle processes the assessment_export tool call.
func (t *ExportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format := report.Format(strings.ToLower(req.GetString("format", string(report.FormatJSON))))
	if err := report.ValidateFormat(format); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r := t.flow.Report()
	path, err := t.exporter.Export(r, format)
	if err != nil {
		return nil, fmt.Errorf("exporting report: %w", err)
	}

	note := ""
	if !r.Assessment.IsComplete() {
		note = "\n\n_The assessment is not complete yet; the report has no tier or ROI projection._"
	}
	response := fmt.Sprintf(
		"# Report Exported\n\n"+
			"**File:** `%s`\n"+
			"**Format:** %s\n"+
			"**Generated:** %s%s",
		path, format, r.GeneratedAt.Format("2006-01-02 15:04:05 MST"), note,
	)
	return mcp.NewToolResultText(response), nil
}
