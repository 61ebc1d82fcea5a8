package report

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/HendryAvila/assessor/internal/assessment"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

var validFormats = map[Format]bool{
	FormatJSON: true,
	FormatHTML: true,
}

// ValidateFormat returns an error if the format is not recognized.
func ValidateFormat(f Format) error {
	if !validFormats[f] {
		return fmt.Errorf("invalid format %q: must be one of: json, html", f)
	}
	return nil
}

// Exporter writes report files into a directory.
type Exporter struct {
	dir string
	md  goldmark.Markdown
}

// NewExporter creates an exporter that writes into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{
		dir: dir,
		md:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Dir returns the export directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Export writes r in the given format and returns the file path. JSON
// files use assessment.ReportFilename; HTML files share the same stem.
func (e *Exporter) Export(r assessment.Report, format Format) (string, error) {
	if err := ValidateFormat(format); err != nil {
		return "", err
	}
	if r.Assessment == nil {
		return "", fmt.Errorf("report has no assessment")
	}

	var data []byte
	var err error
	name := filepath.Base(assessment.ReportFilename(r.Assessment.ClientID))
	switch format {
	case FormatJSON:
		data, err = r.JSON()
	case FormatHTML:
		name = strings.TrimSuffix(name, ".json") + ".html"
		data, err = e.HTML(r)
	}
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory %s: %w", e.dir, err)
	}
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// HTML renders the markdown summary into a standalone HTML document.
func (e *Exporter) HTML(r assessment.Report) ([]byte, error) {
	var content bytes.Buffer
	if err := e.md.Convert([]byte(Markdown(r)), &content); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}

	title := "Assessment Report"
	if r.Assessment != nil {
		title += " " + r.Assessment.ClientID
	}

	var doc bytes.Buffer
	doc.WriteString("<!doctype html><html><head><meta charset='utf-8'><title>")
	doc.WriteString(html.EscapeString(title))
	doc.WriteString("</title><style>")
	doc.WriteString(stylesheet)
	doc.WriteString("</style></head><body><main class='report'>")
	doc.Write(content.Bytes())
	doc.WriteString("</main></body></html>\n")
	return doc.Bytes(), nil
}

const stylesheet = "body{font-family:system-ui,sans-serif;background:#fff;color:#1c1917;margin:0;padding:1rem;} " +
	".report{max-width:960px;margin:0 auto;} " +
	"table{width:100%;border-collapse:collapse;font-size:0.9rem;} " +
	"th,td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;} " +
	"thead th{background:#f1f5f9;} " +
	"@media print{body{padding:0;}}"
