package cmd

import (
	"fmt"
	"os"

	"github.com/showquotes/transcript-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcript-api",
	Short: "Transcript API server",
	Long: `Transcript API - a scripted-dialogue transcript store and query API

Sessions get isolated SQLite datasets. A session imports an extracted
transcript corpus (season directories holding episode files), then
queries it: random line sampling, phrase search with context windows,
and full episode transcripts.

Features:
  • Per-session isolated datasets
  • Atomic corpus imports with speaker extraction
  • Random line sampling with season/episode/speaker filters
  • Phrase search with configurable context windows`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose logging")
}

// loadConfig loads the configuration when a command needs it. Version
// and help never touch config, so they stay usable with a broken file.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
