// Package cmd implements the assessor command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HendryAvila/assessor/internal/config"
	"github.com/HendryAvila/assessor/internal/logging"
	"github.com/HendryAvila/assessor/internal/server"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	verbose    bool
}

// load resolves the configuration and builds the logger for a command run.
func (o *globalOptions) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	level := cfg.LogLevel
	if o.verbose {
		level = "debug"
	}
	logger, err := logging.New(level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// NewRootCommand creates and returns the root cobra command for assessor.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "assessor",
		Short: "Constitutional business assessment MCP server",
		Long: `Assessor guides a client through a three-phase business assessment
(business exploration, pain point analysis, investment qualification)
and recommends a service tier with an evidence-based ROI projection.

Run "assessor serve" from your AI tool's MCP config. The other commands
inspect or export the assessment saved in the data directory.`,
		Version:      server.Version,
		SilenceUsage: true,
	}
	cmd.SetVersionTemplate("assessor v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		fmt.Sprintf("config file (default %s)", config.DefaultPath()))
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// NewVersionCommand prints the build version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the assessor version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "assessor v%s\n", server.Version)
		},
	}
}
