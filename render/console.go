package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/s0up4200/marquee/screen"
	"github.com/s0up4200/marquee/tmdb"
)

const noImage = "No Image"

// FormatOptions contains options for formatting output
type FormatOptions struct {
	ImageBaseURL string
	PosterSize   string
	TitleWidth   int
	CastLimit    int
	ShowDetails  bool
}

// ConsoleFormatter provides console output formatting for movies
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatMovieList formats a titled movie section for console display
func (f *ConsoleFormatter) FormatMovieList(title string, movies []tmdb.Movie, genres tmdb.GenreIndex, options FormatOptions) string {
	if len(movies) == 0 {
		return fmt.Sprintf("\n%s: no movies found\n", title)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", title, len(movies))

	for i, movie := range movies {
		isLast := i == len(movies)-1
		f.formatMovie(&sb, movie, genres, isLast, options)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatHome formats the three home sections
func (f *ConsoleFormatter) FormatHome(home *screen.Home, limit int, options FormatOptions) string {
	var sb strings.Builder
	sb.WriteString(f.FormatMovieList("Popular", truncate(home.Popular, limit), home.Genres, options))
	sb.WriteString(f.FormatMovieList("Upcoming", truncate(home.Upcoming, limit), home.Genres, options))
	fmt.Fprintf(&sb, "\n%d genres available\n", len(home.Genres))
	return sb.String()
}

// FormatGenres formats the genre list
func (f *ConsoleFormatter) FormatGenres(genres []tmdb.Genre) string {
	if len(genres) == 0 {
		return "No genres found"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nGenres (%d):\n\n", len(genres))

	for i, genre := range genres {
		prefix := "├"
		if i == len(genres)-1 {
			prefix = "╰"
		}
		fmt.Fprintf(&sb, "%s── %s [%d]\n", prefix, genre.Name, genre.ID)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatDetail formats the detail screen of a single movie
func (f *ConsoleFormatter) FormatDetail(detail *screen.Detail, options FormatOptions) string {
	movie := *detail.Movie
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s %s\n", f.title(movie, options), yearLabel(movie))
	sb.WriteString(strings.Repeat("─", runewidth.StringWidth(f.title(movie, options))) + "\n")

	fmt.Fprintf(&sb, "⭐ %s/10\n", tmdb.FormatRating(movie.VoteAverage))
	if movie.ReleaseDate != "" {
		fmt.Fprintf(&sb, "Release: %s\n", movie.ReleaseDate)
	}
	if len(detail.Genres) > 0 {
		fmt.Fprintf(&sb, "Genres: %s\n", strings.Join(detail.Genres, ", "))
	}
	fmt.Fprintf(&sb, "Poster: %s\n", posterLabel(movie, options.ImageBaseURL, tmdb.PosterLarge))

	if movie.Overview != "" {
		fmt.Fprintf(&sb, "\n%s\n", movie.Overview)
	}

	switch {
	case detail.CreditsErr != nil:
		sb.WriteString("\nCast unavailable\n")
	case detail.Credits != nil && len(detail.Credits.Cast) > 0:
		cast := detail.Credits.Cast
		if options.CastLimit > 0 && len(cast) > options.CastLimit {
			cast = cast[:options.CastLimit]
		}

		fmt.Fprintf(&sb, "\nCast (%d):\n", len(detail.Credits.Cast))
		for i, member := range cast {
			prefix := "├"
			if i == len(cast)-1 {
				prefix = "╰"
			}
			if member.Character != "" {
				fmt.Fprintf(&sb, "%s── %s as %s\n", prefix, member.Name, member.Character)
			} else {
				fmt.Fprintf(&sb, "%s── %s\n", prefix, member.Name)
			}
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatMovie formats a single movie entry
func (f *ConsoleFormatter) formatMovie(sb *strings.Builder, movie tmdb.Movie, genres tmdb.GenreIndex, isLast bool, options FormatOptions) {
	prefix := "├"
	if isLast {
		prefix = "╰"
	}

	fmt.Fprintf(sb, "%s── %s %s  ⭐ %s\n", prefix, f.title(movie, options), yearLabel(movie), tmdb.FormatRating(movie.VoteAverage))

	indent := "│   "
	if isLast {
		indent = "    "
	}

	if labels := genres.Labels(movie.GenreIDs); len(labels) > 0 {
		fmt.Fprintf(sb, "%sGenres: %s\n", indent, strings.Join(labels, ", "))
	}

	if options.ShowDetails {
		size := options.PosterSize
		if size == "" {
			size = tmdb.PosterSmall
		}
		fmt.Fprintf(sb, "%sPoster: %s\n", indent, posterLabel(movie, options.ImageBaseURL, size))
		fmt.Fprintf(sb, "%sID: %d\n", indent, movie.ID)
	}
}

// title truncates the movie title to the configured display width
func (f *ConsoleFormatter) title(movie tmdb.Movie, options FormatOptions) string {
	if options.TitleWidth <= 0 {
		return movie.Title
	}
	return runewidth.Truncate(movie.Title, options.TitleWidth, "…")
}

func yearLabel(movie tmdb.Movie) string {
	if year := movie.Year(); year > 0 {
		return fmt.Sprintf("(%d)", year)
	}
	return "(TBA)"
}

func posterLabel(movie tmdb.Movie, baseURL, size string) string {
	if u := tmdb.ImageURL(baseURL, size, movie.PosterPath); u != "" {
		return u
	}
	return noImage
}

func truncate(movies []tmdb.Movie, limit int) []tmdb.Movie {
	if limit > 0 && len(movies) > limit {
		return movies[:limit]
	}
	return movies
}
