package tmdb

import (
	"strconv"
	"strings"
)

// DefaultImageBaseURL is the TMDB image CDN
const DefaultImageBaseURL = "https://image.tmdb.org/t/p"

// Poster width buckets
const (
	PosterSmall = "w342"
	PosterLarge = "w500"
	ProfileSize = "w185"
)

// ImageURL joins the CDN base, a width bucket and an image path.
// It returns an empty string when there is no image.
func ImageURL(baseURL, size string, path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	if baseURL == "" {
		baseURL = DefaultImageBaseURL
	}

	p := *path
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return strings.TrimRight(baseURL, "/") + "/" + size + p
}

// FormatRating renders a vote average with one decimal
func FormatRating(voteAverage float64) string {
	return strconv.FormatFloat(voteAverage, 'f', 1, 64)
}
