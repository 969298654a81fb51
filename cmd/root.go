// Package cmd implements the CLI commands for PageSum using Cobra.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gaurav-prasanna/pagesum/config"
	"github.com/gaurav-prasanna/pagesum/logging"
	"github.com/spf13/cobra"
)

// Loaded once in PersistentPreRunE and read-only afterwards.
var (
	cfg    *config.Config
	logger logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pagesum",
	Short: "PageSum — extract a web page and summarize it with AI",
	Long: `PageSum fetches a single web page (rendering JavaScript when possible),
extracts its readable paragraph text, and produces an AI-generated summary
in a Professional or Concise style, optionally exported as PDF, DOCX,
Markdown, or JSON.

Configuration is read from the environment or a .env file
(HF_API_TOKEN is required for summarizing).

Usage:
  pagesum summarize <url> [flags]
  pagesum fetch <url>`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logger = logging.New(&logging.Config{
			Level:  cfg.Logging.Level,
			Output: os.Stderr,
			JSON:   strings.EqualFold(cfg.Logging.Format, "json"),
		})
		for _, w := range cfg.Warnings {
			logger.Warn(w)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
