// Package cmd — fetch command.
// Runs only the extraction stage and prints the resulting row.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fetchStaticOnly bool

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Extract a page's paragraph text without summarizing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawURL := args[0]
		if err := validateURL(rawURL); err != nil {
			return err
		}

		e := newScraper(cfg, logger, fetchStaticOnly).Scrape(cmd.Context(), rawURL)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "link:   %s\n", e.Link)
		fmt.Fprintf(out, "status: %s\n", e.Status)
		if e.Title != "" {
			fmt.Fprintf(out, "title:  %s\n", e.Title)
		}
		fmt.Fprintf(out, "chars:  %d\n\n%s\n", len([]rune(e.Text)), e.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().BoolVar(&fetchStaticOnly, "static-only", false, "Skip the headless browser and use a plain GET")
}
