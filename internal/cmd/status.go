package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/HendryAvila/assessor/internal/assessment"
	"github.com/HendryAvila/assessor/internal/report"
	"github.com/HendryAvila/assessor/internal/server"
)

// NewStatusCommand prints the saved assessment.
func NewStatusCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the saved assessment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			step, a := ctrl.Snapshot()
			printStatus(cmd.OutOrStdout(), step, a)
			return nil
		},
	}
}

func printStatus(w io.Writer, step assessment.Step, a *assessment.ClientAssessment) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan, color.Bold)

	bold.Fprintln(w, "Assessment")
	fmt.Fprintf(w, "  Client: %s\n", a.ClientID)
	fmt.Fprintf(w, "  Step:   %s\n\n", step)

	bold.Fprintln(w, "Phases")
	phases := []struct {
		n    int
		done bool
	}{
		{1, a.Phase1 != nil},
		{2, a.Phase2 != nil},
		{3, a.Phase3 != nil},
	}
	for _, p := range phases {
		if p.done {
			green.Fprintf(w, "  [x] ")
		} else {
			yellow.Fprintf(w, "  [ ] ")
		}
		fmt.Fprintf(w, "Phase %d: %s\n", p.n, assessment.PhaseName(p.n))
	}
	fmt.Fprintln(w)

	if !a.IsComplete() {
		yellow.Fprintln(w, report.Placeholder)
		return
	}

	tier, _ := assessment.Tier(*a.ServiceTier)
	roi := a.ROIAssessment
	cyan.Fprintf(w, "Recommended tier: %s (%s)\n", tier.Name, tier.Price)
	fmt.Fprintf(w, "  Projected annual value: %s\n", report.Currency(roi.ProjectedValue))
	fmt.Fprintf(w, "  Investment required:    %s\n", report.Currency(roi.InvestmentRequired))
	fmt.Fprintf(w, "  Time to value:          %d months\n", roi.TimeToValue)
	fmt.Fprintf(w, "  Confidence:             %d%%\n", roi.ConfidenceLevel)
}
