// Package cmd — summarize command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → summarize → render → write.
package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/gaurav-prasanna/pagesum/core"
	"github.com/gaurav-prasanna/pagesum/core/output"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagStyle      string
	flagPDF        bool
	flagDOCX       bool
	flagMarkdown   bool
	flagJSON       bool
	flagOutputDir  string
	flagStaticOnly bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <url>",
	Short: "Extract a page and print an AI summary",
	Long: `Summarize fetches a page, extracts its paragraph text, and summarizes it
with a hosted model. Warnings (missing token, page too short, model errors)
are printed in place of the summary.

Any combination of export formats may be requested.

Examples:
  pagesum summarize https://example.com
  pagesum summarize https://example.com --style concise --pdf --docx
  pagesum summarize https://example.com --json --output_dir ./out --static-only`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringVar(&flagStyle, "style", string(core.StyleProfessional),
		"Summary style: professional or concise")

	// Export format flags (combinable).
	summarizeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Export the summary as PDF")
	summarizeCmd.Flags().BoolVar(&flagDOCX, "docx", false, "Export the summary as DOCX")
	summarizeCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Export the report as Markdown")
	summarizeCmd.Flags().BoolVar(&flagJSON, "json", false, "Export the report as JSON")

	summarizeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	summarizeCmd.Flags().BoolVar(&flagStaticOnly, "static-only", false, "Skip the headless browser and use a plain GET")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	rawURL := args[0]
	if err := validateURL(rawURL); err != nil {
		return err
	}

	renderers := selectRenderers(flagPDF, flagDOCX, flagMarkdown, flagJSON)
	var writer *output.Writer
	if len(renderers) > 0 {
		w, err := output.New(flagOutputDir)
		if err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
		writer = w
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	style := core.ParseStyle(flagStyle)

	extraction := newScraper(cfg, logger, flagStaticOnly).Scrape(ctx, rawURL)
	printExtraction(out, extraction)

	summary := newSummarizer(cfg, logger).Summarize(ctx, extraction, style)
	fmt.Fprintf(out, "\nAI Summary (%s)\n\n%s\n", style, summary.Text)

	if writer == nil {
		return nil
	}

	report := core.Report{
		Title:       extraction.Title,
		Extraction:  extraction,
		Style:       style,
		Summary:     summary,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, r := range renderers {
		data, err := r.Render(report)
		if err != nil {
			return fmt.Errorf("render %s: %w", r.Extension(), err)
		}
		path, err := writer.Write(rawURL, data, r.Extension())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Written: %s\n", path)
	}
	return nil
}

// printExtraction shows the single {text, link} row.
func printExtraction(w io.Writer, e core.ExtractionResult) {
	if e.Status == core.FetchOK {
		fmt.Fprintf(w, "✓ Extracted 1 item from %s (%d chars)\n", e.Link, len([]rune(e.Text)))
		return
	}
	fmt.Fprintf(w, "✗ %s (%s): %s\n", e.Link, e.Status, e.Text)
}
