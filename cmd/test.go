package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:     "test",
	Short:   "Test connection to TMDB",
	Long:    `Test the connection to TMDB and verify the configured API key.`,
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to TMDB at %s...\n", cfg.TMDB.BaseURL)

	if err := tmdbClient.TestConnection(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(out, "✓ Connection successful!")

	if len(cfg.Filter.Presets) > 0 {
		fmt.Fprintf(out, "\nFilter presets:\n")
		for _, name := range filters.ListFilters() {
			fmt.Fprintf(out, "  • %s: %s\n", name, cfg.Filter.Presets[name].Expression)
		}
	}

	return nil
}
