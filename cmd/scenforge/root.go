package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scenforge/internal/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "scenforge",
	Short: "Scenario generation toolkit",
	Long:  "Scenforge generates, validates, and previews hex-crawl mission scenarios.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cmd.SetContext(logging.NewContext(cmd.Context(), logging.New(verbose)))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(previewCmd)
}
