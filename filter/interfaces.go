package filter

import (
	"github.com/s0up4200/marquee/tmdb"
)

// Entry is a movie with its genre ids resolved to labels
type Entry struct {
	Movie  tmdb.Movie
	Genres []string
}

// NewEntry resolves the movie's genres against the index
func NewEntry(movie tmdb.Movie, genres tmdb.GenreIndex) Entry {
	return Entry{
		Movie:  movie,
		Genres: genres.Labels(movie.GenreIDs),
	}
}

// Filter defines the basic interface for movie filters
type Filter interface {
	// Evaluate checks if a movie matches the filter criteria
	Evaluate(entry Entry) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Run evaluates the filter and reports evaluation failures
	Run(entry Entry) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
