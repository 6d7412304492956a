// Package search matches movie titles against a free text query.
package search

import (
	"strings"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/s0up4200/marquee/tmdb"
)

// titleIndex implements fuzzy.Source over lowercase movie titles
type titleIndex struct {
	lowerTitles []string
}

func newTitleIndex(movies []tmdb.Movie) *titleIndex {
	idx := &titleIndex{lowerTitles: make([]string, len(movies))}
	for i, movie := range movies {
		idx.lowerTitles[i] = strings.ToLower(movie.Title)
	}
	return idx
}

// String returns the lowercase title at index i
func (idx *titleIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of titles
func (idx *titleIndex) Len() int { return len(idx.lowerTitles) }

// Titles returns the movies whose title fuzzy matches query, best match
// first. An empty query returns movies unchanged.
func Titles(query string, movies []tmdb.Movie) []tmdb.Movie {
	query = strings.TrimSpace(query)
	if query == "" {
		return movies
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), newTitleIndex(movies))

	results := make([]tmdb.Movie, len(matches))
	for i, match := range matches {
		results[i] = movies[match.Index]
	}
	return results
}

// Closest returns the movie whose title is the smallest edit distance from
// query. It is meant for "did you mean" hints when Titles finds nothing, so
// titles further away than a third of the query length are not reported.
func Closest(query string, movies []tmdb.Movie) (tmdb.Movie, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(movies) == 0 {
		return tmdb.Movie{}, false
	}

	threshold := max(2, len([]rune(query))/3)
	best, bestDistance := -1, threshold+1

	for i, title := range newTitleIndex(movies).lowerTitles {
		distance := fuzzysearch.LevenshteinDistance(query, title)
		if distance < bestDistance {
			best, bestDistance = i, distance
		}
	}

	if best < 0 {
		return tmdb.Movie{}, false
	}
	return movies[best], true
}
