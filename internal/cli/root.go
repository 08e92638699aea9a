// Package cli implements the command-line interface for the valuations CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itusdata/valuations-cli-go/internal/core"
)

// Global flags
var (
	configPath string
	verbose    bool
	csvOut     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "valuations",
	Short:   "Valuations CLI – query the local valuations data file",
	Long:    `A command-line utility for reading price-earnings data from a local SQLite valuations file.`,
	Version: core.Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", core.DefaultConfigFile, "Path to the settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Mirror log records to stderr")
	rootCmd.PersistentFlags().BoolVar(&csvOut, "csv", false, "Emit CSV instead of aligned text")
}
