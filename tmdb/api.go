package tmdb

import (
	"context"
)

// API defines the catalog operations consumed by screens
type API interface {
	// ListPopularMovies returns the first page of popular movies, or an empty slice on failure
	ListPopularMovies(ctx context.Context) []Movie

	// ListUpcomingMovies returns the first page of upcoming movies, or an empty slice on failure
	ListUpcomingMovies(ctx context.Context) []Movie

	// ListGenres returns the movie genre list, or an empty slice on failure
	ListGenres(ctx context.Context) []Genre

	// GetMovieDetails retrieves a single movie by its identifier
	GetMovieDetails(ctx context.Context, id int) (*Movie, error)

	// GetMovieCredits retrieves the cast of a single movie
	GetMovieCredits(ctx context.Context, id int) (*MovieCredits, error)
}

var _ API = (*Client)(nil)
