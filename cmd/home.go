package cmd

import (
	"github.com/spf13/cobra"
)

// homeCmd represents the home command
var homeCmd = &cobra.Command{
	Use:     "home",
	Short:   "Show popular and upcoming movies together",
	Long:    `Load popular movies, upcoming movies and genres concurrently and print every section.`,
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runHome,
}

func init() {
	rootCmd.AddCommand(homeCmd)

	homeCmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of movies per section (default from config)")
}

func runHome(cmd *cobra.Command, args []string) error {
	home, err := loader.LoadHome(cmd.Context())
	if err != nil {
		return err
	}

	n := limit
	if !cmd.Flags().Changed("limit") {
		n = cfg.Display.Limit
	}

	if n > 0 {
		home.Popular = home.Popular[:min(n, len(home.Popular))]
		home.Upcoming = home.Upcoming[:min(n, len(home.Upcoming))]
	}

	return writeOutput(cmd, home, func() string {
		return formatter.FormatHome(home, n, formatOptions(false))
	})
}
