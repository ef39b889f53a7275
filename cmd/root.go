package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoaworks/reserve-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reserve-api",
	Short: "HOA Reserve Study API server",
	Long: `Reserve Study API - document annotation and funding analysis for HOAs

This API manages reserve-study documents with position-anchored comment
threads, an asset component registry, funding scenarios, and background
LLM narrative generation for reserve reports.

Features:
  • Document registry with threaded, position-anchored annotations
  • Component registry with condition tracking and photo gallery
  • Funding scenario modeling
  • Background report generation with LLM narratives`,
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
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only when a command that needs config runs
func loadConfig() {
	// Version and help never need config
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
