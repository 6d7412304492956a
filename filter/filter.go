package filter

import (
	"strings"

	"github.com/s0up4200/marquee/tmdb"
)

var defaultCompiler = NewExprCompiler(WithCache(64))

// CompileFilter compiles an expression with the shared caching compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// ParseAndCreateFilter parses a filter expression and returns a filter function
func ParseAndCreateFilter(expression string) (func(Entry) bool, error) {
	if strings.TrimSpace(expression) == "" {
		// Empty filter matches everything
		return func(Entry) bool { return true }, nil
	}

	filter, err := CompileFilter(expression)
	if err != nil {
		return nil, err
	}

	return filter.Evaluate, nil
}

// Apply returns the movies that match, in their original order
func Apply(movies []tmdb.Movie, genres tmdb.GenreIndex, match func(Entry) bool) []tmdb.Movie {
	matched := make([]tmdb.Movie, 0, len(movies))
	for _, movie := range movies {
		if match(NewEntry(movie, genres)) {
			matched = append(matched, movie)
		}
	}
	return matched
}
