package cmd

import (
	"github.com/spf13/cobra"
)

// genresCmd represents the genres command
var genresCmd = &cobra.Command{
	Use:     "genres",
	Short:   "List movie genres",
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		genres := tmdbClient.ListGenres(cmd.Context())
		return writeOutput(cmd, genres, func() string {
			return formatter.FormatGenres(genres)
		})
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
}
