package cmd

import (
	"github.com/Jaymi-01/framez/pkg/output"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X ...cmd.Version=..."
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		output.Printf("Framez CLI v%s\n", Version)
	},
}
