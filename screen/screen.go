// Package screen loads the data behind each view of the movie browser.
//
// Each load issues a fixed set of independent catalog calls concurrently and
// waits for all of them before returning. Results are stored by the
// goroutine that produced them, so no state is shared between calls.
package screen

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/marquee/tmdb"
)

// Home holds the sections of the landing view
type Home struct {
	Popular  []tmdb.Movie    `json:"popular" yaml:"popular"`
	Upcoming []tmdb.Movie    `json:"upcoming" yaml:"upcoming"`
	Genres   tmdb.GenreIndex `json:"genres" yaml:"genres"`
}

// Detail holds everything the movie detail view renders
type Detail struct {
	Movie   *tmdb.Movie        `json:"movie" yaml:"movie"`
	Genres  []string           `json:"genres" yaml:"genres"`
	Credits *tmdb.MovieCredits `json:"credits,omitempty" yaml:"credits,omitempty"`
	// CreditsErr is set when the cast could not be loaded; the view renders without it
	CreditsErr error `json:"-" yaml:"-"`
}

// Loader runs the per-view fan-out against the catalog
type Loader struct {
	client tmdb.API
	logger zerolog.Logger
}

// NewLoader creates a new Loader
func NewLoader(client tmdb.API, logger zerolog.Logger) *Loader {
	return &Loader{
		client: client,
		logger: logger,
	}
}

// LoadHome fetches popular movies, upcoming movies and genres concurrently.
// A failing list comes back empty and does not affect the others.
func (l *Loader) LoadHome(ctx context.Context) (*Home, error) {
	home := &Home{}
	var genres []tmdb.Genre

	var g errgroup.Group
	g.Go(func() error {
		home.Popular = l.client.ListPopularMovies(ctx)
		return nil
	})
	g.Go(func() error {
		home.Upcoming = l.client.ListUpcomingMovies(ctx)
		return nil
	})
	g.Go(func() error {
		genres = l.client.ListGenres(ctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Results of a cancelled load are discarded by the caller
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	home.Genres = tmdb.NewGenreIndex(genres)

	l.logger.Debug().
		Int("popular", len(home.Popular)).
		Int("upcoming", len(home.Upcoming)).
		Int("genres", len(home.Genres)).
		Msg("Loaded home view")

	return home, nil
}

// LoadDetail fetches a movie, its credits and the genre list concurrently.
// A details failure fails the load; a credits failure is recorded on the result.
func (l *Loader) LoadDetail(ctx context.Context, id int) (*Detail, error) {
	detail := &Detail{}
	var genres []tmdb.Genre

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		movie, err := l.client.GetMovieDetails(gctx, id)
		if err != nil {
			return err
		}
		detail.Movie = movie
		return nil
	})
	g.Go(func() error {
		credits, err := l.client.GetMovieCredits(gctx, id)
		if err != nil {
			detail.CreditsErr = err
			return nil
		}
		detail.Credits = credits
		return nil
	})
	// Genres use the parent context so a details failure does not cancel them
	g.Go(func() error {
		genres = l.client.ListGenres(ctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load movie details: %w", err)
	}

	if detail.CreditsErr != nil {
		l.logger.Warn().
			Err(detail.CreditsErr).
			Int("movie_id", id).
			Msg("Failed to load credits, showing movie without cast")
	}

	detail.Genres = tmdb.NewGenreIndex(genres).Labels(detail.Movie.GenreIDs)

	return detail, nil
}

// Section names a single movie list
type Section string

// Sections of the home view
const (
	SectionPopular  Section = "popular"
	SectionUpcoming Section = "upcoming"
)

// List holds one section with the genre index needed to label it
type List struct {
	Section Section         `json:"section" yaml:"section"`
	Movies  []tmdb.Movie    `json:"movies" yaml:"movies"`
	Genres  tmdb.GenreIndex `json:"genres" yaml:"genres"`
}

// LoadSection fetches a single section and the genre list concurrently
func (l *Loader) LoadSection(ctx context.Context, section Section) (*List, error) {
	var fetch func(context.Context) []tmdb.Movie
	switch section {
	case SectionPopular:
		fetch = l.client.ListPopularMovies
	case SectionUpcoming:
		fetch = l.client.ListUpcomingMovies
	default:
		return nil, fmt.Errorf("unknown section: %q", section)
	}

	list := &List{Section: section}
	var genres []tmdb.Genre

	var g errgroup.Group
	g.Go(func() error {
		list.Movies = fetch(ctx)
		return nil
	})
	g.Go(func() error {
		genres = l.client.ListGenres(ctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list.Genres = tmdb.NewGenreIndex(genres)
	return list, nil
}
