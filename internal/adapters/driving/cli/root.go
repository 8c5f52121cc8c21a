// Package cli implements the terminal interface. Commands are registered
// against a single root command; the watch command assembles the daemon
// from the driven adapters at startup.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bon-clevique/NotionSync/internal/logger"
)

// version is injected at build time via ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "notionsync",
	Short: "Upload local markdown notes to Notion",
	Long: `notionsync watches local directories for new markdown files,
converts each one into Notion blocks and creates a page for it in a
Notion database. Uploaded files are archived or deleted locally.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// defaultConfigDir returns the operator config directory, ~/.notionsync.
func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".notionsync"
	}
	return filepath.Join(home, ".notionsync")
}
