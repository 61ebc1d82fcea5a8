package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/HendryAvila/assessor/internal/server"
)

// NewResetCommand discards the saved assessment.
func NewResetCommand(opts *globalOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the saved assessment and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset discards every answer; pass --yes to confirm")
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

			if err := ctrl.Reset(); err != nil {
				return fmt.Errorf("resetting assessment: %w", err)
			}
			_, a := ctrl.Snapshot()
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Assessment reset. New client id: %s\n", a.ClientID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the reset")
	return cmd
}
