// SPDX-License-Identifier: MIT

// Package cli implements the hopblocks command line.
package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// verbose enables debug logging.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hopblocks",
	Short: "Build and inspect lattice hopping structures",
	Long: `hopblocks assembles the per-family hopping blocks of a tight-binding
lattice, converts them to compressed sparse rows and stores CBOR snapshots.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// logger returns the stderr logger configured by the persistent flags.
func logger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
