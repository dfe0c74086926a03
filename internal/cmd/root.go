package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Jaymi-01/framez/pkg/client"
	"github.com/Jaymi-01/framez/pkg/config"
	"github.com/Jaymi-01/framez/pkg/logger"
	"github.com/Jaymi-01/framez/pkg/output"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "framez",
	Short: "Framez CLI - share frames from the terminal",
	Long: `Framez CLI is a command-line client for Framez. Share text and
image frames, browse the feed, like and comment on posts and manage
your profile directly from the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(configPath); err != nil {
			return fmt.Errorf("initializing config: %w", err)
		}
		logger.Init(verbose)
		client.Init()

		if cmd.Flags().Changed("output") {
			if !output.ValidateFormat(outputFmt) {
				return fmt.Errorf("invalid output format %q (text, json, table)", outputFmt)
			}
			config.Set("output.format", outputFmt)
		}
		return nil
	},
}

// Execute runs the root command until ctx is cancelled
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/framez/cli/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "Output format: text, json, table")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)
}
