package cmd

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HendryAvila/assessor/internal/server"
)

// NewServeCommand starts the MCP server on stdio.
func NewServeCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Long: `Start the MCP server on stdin/stdout. Add it to your AI tool's MCP config:

  {
    "mcpServers": {
      "assessor": {
        "command": "assessor",
        "args": ["serve"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			s, cleanup, err := server.New(cfg, logger)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			defer cleanup()

			// Logs go to stderr; stdout belongs to the MCP transport.
			// ServeStdio handles SIGINT and SIGTERM itself.
			return mcpserver.ServeStdio(s,
				mcpserver.WithErrorLogger(zap.NewStdLog(logger.Named("stdio"))),
			)
		},
	}
}
