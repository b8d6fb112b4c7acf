package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portal-cli",
	Short: "Wassociates portal administration tool",
	Long: `portal-cli is the administrative write path for the member portal.

The portal server only ever reads the document store; this tool owns every
write: seeding members, the shared-account links, the administrator list and
the icon map.

Available commands:
  seed             Apply a seed file to the document store
  members list     List the member documents

Use "portal-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
