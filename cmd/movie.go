package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// movieCmd represents the movie command
var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show details and cast of a movie",
	Long: `Load the details, credits and genres of a movie concurrently.

The command fails when the details cannot be loaded. When only the credits
fail, the movie is shown without its cast.`,
	Example: "  marquee movie 550",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runMovie,
}

func init() {
	rootCmd.AddCommand(movieCmd)
}

func runMovie(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id %q: %w", args[0], err)
	}

	detail, err := loader.LoadDetail(cmd.Context(), id)
	if err != nil {
		return err
	}

	return writeOutput(cmd, detail, func() string {
		return formatter.FormatDetail(detail, formatOptions(true))
	})
}
