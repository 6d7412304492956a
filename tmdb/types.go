package tmdb

import (
	"encoding/json"
	"strconv"
)

// Movie represents a movie record as returned by list and detail endpoints
type Movie struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	// PosterPath is nil when the catalog has no artwork for the movie
	PosterPath  *string `json:"poster_path" yaml:"poster_path"`
	VoteAverage float64 `json:"vote_average" yaml:"vote_average"`
	ReleaseDate string  `json:"release_date" yaml:"release_date"`
	Overview    string  `json:"overview" yaml:"overview"`
	GenreIDs    []int   `json:"genre_ids" yaml:"genre_ids"`
}

// HasPoster reports whether the movie has artwork
func (m *Movie) HasPoster() bool {
	return m.PosterPath != nil && *m.PosterPath != ""
}

// Year returns the release year, or 0 when the release date is empty or unparsable
func (m *Movie) Year() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// Genre represents a movie genre
type Genre struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CastMember represents one billed cast entry of a movie
type CastMember struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	// Character is the role played; empty when the catalog has none
	Character   string  `json:"character" yaml:"character"`
	ProfilePath *string `json:"profile_path" yaml:"profile_path"`
}

// MovieCredits holds the cast of a movie. Crew entries are kept undecoded.
type MovieCredits struct {
	ID   int               `json:"id" yaml:"id"`
	Cast []CastMember      `json:"cast" yaml:"cast"`
	Crew []json.RawMessage `json:"crew" yaml:"-"`
}

// MoviesResponse represents the paginated envelope of list endpoints
type MoviesResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// GenresResponse represents the response from the genre list endpoint
type GenresResponse struct {
	Genres []Genre `json:"genres"`
}

// movieDetails is the /movie/{id} payload. Details carry genre objects
// instead of genre_ids; either form is accepted.
type movieDetails struct {
	Movie
	Genres []Genre `json:"genres"`
}

// toMovie folds the genre objects into GenreIDs when the ids are absent
func (d *movieDetails) toMovie() Movie {
	movie := d.Movie
	if len(movie.GenreIDs) == 0 && len(d.Genres) > 0 {
		movie.GenreIDs = make([]int, 0, len(d.Genres))
		for _, genre := range d.Genres {
			movie.GenreIDs = append(movie.GenreIDs, genre.ID)
		}
	}
	return movie
}
