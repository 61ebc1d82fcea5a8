// Assessor: constitutional business assessment MCP server.
//
// Usage:
//
//	assessor serve     # Start MCP server (stdio transport)
//	assessor status    # Show the saved assessment
//	assessor export    # Write the report to disk
//	assessor reset     # Discard the saved assessment
package main

import (
	"fmt"
	"os"

	"github.com/HendryAvila/assessor/internal/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
