// Package cli provides the Cobra command structure for texcalc.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root texcalc command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "texcalc",
		Short: "Evaluate arithmetic inside LaTeX inline math",
		Long: `texcalc evaluates the arithmetic written inside $...$ inline math and
splices the answer back into the text.

Given a caret inside a math span, texcalc finds the expression to compute,
translates LaTeX macros such as \times and \sin into plain arithmetic,
evaluates it, and inserts or replaces the answer after an equals sign:

  $2 \times 3$        becomes  $2 \times 3 = 6$
  $2 \times 4 = 6$    becomes  $2 \times 4 = 8$`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newEvalCommand())
	rootCmd.AddCommand(newApplyCommand())
	rootCmd.AddCommand(newMacrosCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
