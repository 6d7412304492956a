package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/filter"
	"github.com/s0up4200/marquee/screen"
	"github.com/s0up4200/marquee/search"
	"github.com/s0up4200/marquee/tmdb"
)

var (
	// Command flags
	filterExpr  string
	preset      string
	searchQuery string
	limit       int
	showDetails bool
)

var popularCmd = newListCmd(screen.SectionPopular, "Popular", "List popular movies",
	`List the first page of movies TMDB currently ranks as popular.`)

var upcomingCmd = newListCmd(screen.SectionUpcoming, "Upcoming", "List upcoming movies",
	`List the first page of movies with an upcoming theatrical release.`)

func init() {
	rootCmd.AddCommand(popularCmd)
	rootCmd.AddCommand(upcomingCmd)
}

func newListCmd(section screen.Section, title, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     string(section),
		Short:   short,
		Long:    long,
		Args:    cobra.NoArgs,
		PreRunE: initializeApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, section, title)
		},
	}

	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	cmd.Flags().StringVarP(&searchQuery, "search", "s", "", "fuzzy match titles")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of movies to show (default from config)")
	cmd.Flags().BoolVar(&showDetails, "details", false, "show poster and id for each movie")
	cmd.MarkFlagsMutuallyExclusive("filter", "preset")

	return cmd
}

func runList(cmd *cobra.Command, section screen.Section, title string) error {
	list, err := loader.LoadSection(cmd.Context(), section)
	if err != nil {
		return err
	}

	movies, err := applyFilter(list.Movies, list.Genres)
	if err != nil {
		return err
	}

	if searchQuery != "" {
		matched := search.Titles(searchQuery, movies)
		if len(matched) == 0 {
			if closest, ok := search.Closest(searchQuery, movies); ok {
				logger.Info().Str("query", searchQuery).Msgf("No match, did you mean %q?", closest.Title)
			}
		}
		movies = matched
	}

	n := limit
	if !cmd.Flags().Changed("limit") {
		n = cfg.Display.Limit
	}
	if n > 0 && len(movies) > n {
		movies = movies[:n]
	}

	list.Movies = movies
	return writeOutput(cmd, list, func() string {
		return formatter.FormatMovieList(title, movies, list.Genres, formatOptions(showDetails))
	})
}

// applyFilter narrows movies with the filter flag or a preset.
// The flags are mutually exclusive; with neither set every movie matches.
func applyFilter(movies []tmdb.Movie, genres tmdb.GenreIndex) ([]tmdb.Movie, error) {
	if preset != "" {
		filtered, err := filters.ApplyFilter(preset, movies, genres)
		if err != nil {
			return nil, fmt.Errorf("preset '%s' not found in config: %w", preset, err)
		}
		return filtered, nil
	}

	match, err := filter.ParseAndCreateFilter(filterExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	if filterExpr != "" {
		logger.Debug().Str("filter", filterExpr).Msg("Filtering movies")
	}

	return filter.Apply(movies, genres, match), nil
}
