package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/HendryAvila/assessor/internal/report"
	"github.com/HendryAvila/assessor/internal/server"
)

// NewExportCommand writes the report for the saved assessment.
func NewExportCommand(opts *globalOptions) *cobra.Command {
	var (
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the assessment report to disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := report.Format(format)
			if err := report.ValidateFormat(f); err != nil {
				return err
			}

			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctrl, cleanup, err := server.OpenController(cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			dir := cfg.ExportDir
			if outDir != "" {
				dir = outDir
			}
			r := ctrl.Report()
			path, err := report.NewExporter(dir).Export(r, f)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !r.Assessment.IsComplete() {
				color.New(color.FgYellow).Fprintln(w, "Assessment is not complete; the report has no tier or ROI yet.")
			}
			fmt.Fprintln(w, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatJSON), "report format (json, html)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: export_dir from config)")
	return cmd
}
