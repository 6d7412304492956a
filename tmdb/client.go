package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the TMDB v3 API endpoint
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Client represents a TMDB API client
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new TMDB client.
//
// The API key is sent as is. A missing or wrong key is reported by the
// service as an authentication failure on the first request.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	options := clientOptions{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		apiKey:     apiKey,
		language:   options.language,
		httpClient: options.httpClient,
		logger:     logger,
	}
}

// doRequest performs an authenticated GET request and returns the response body
func (c *Client) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}

	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("endpoint", endpoint).Msg("Making TMDB API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", c.redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// redact strips the API key from the URL carried by transport errors
func (c *Client) redact(err error) error {
	var urlErr *url.Error
	if c.apiKey != "" && errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, url.QueryEscape(c.apiKey), "REDACTED")
	}
	return err
}

// getJSON fetches endpoint and decodes the body into out
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return nil
}

// TestConnection verifies the API key by requesting the genre list
func (c *Client) TestConnection(ctx context.Context) error {
	var response GenresResponse
	if err := c.getJSON(ctx, "/genre/movie/list", &response); err != nil {
		return fmt.Errorf("failed to connect to TMDB: %w", err)
	}
	return nil
}

// ListPopularMovies retrieves the first page of popular movies
func (c *Client) ListPopularMovies(ctx context.Context) []Movie {
	return c.listMovies(ctx, "/movie/popular")
}

// ListUpcomingMovies retrieves the first page of upcoming movies
func (c *Client) ListUpcomingMovies(ctx context.Context) []Movie {
	return c.listMovies(ctx, "/movie/upcoming")
}

func (c *Client) listMovies(ctx context.Context, endpoint string) []Movie {
	var response MoviesResponse
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		c.logger.Error().
			Err(err).
			Str("endpoint", endpoint).
			Msg("Failed to fetch movies")
		return []Movie{}
	}

	movies := make([]Movie, 0, len(response.Results))
	for _, movie := range response.Results {
		movies = append(movies, c.normalizeMovie(movie))
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("count", len(movies)).
		Int("total_results", response.TotalResults).
		Msg("Retrieved movies from TMDB")

	return movies
}

// ListGenres retrieves the movie genre list
func (c *Client) ListGenres(ctx context.Context) []Genre {
	var response GenresResponse
	if err := c.getJSON(ctx, "/genre/movie/list", &response); err != nil {
		c.logger.Error().Err(err).Msg("Failed to fetch genres")
		return []Genre{}
	}

	if response.Genres == nil {
		return []Genre{}
	}

	c.logger.Debug().Msgf("Retrieved %d genres from TMDB", len(response.Genres))
	return response.Genres
}

// GetMovieDetails retrieves a single movie. Any failure is returned to the caller.
func (c *Client) GetMovieDetails(ctx context.Context, id int) (*Movie, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMovieID, id)
	}

	var details movieDetails
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d", id), &details); err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}

	if details.ID == 0 {
		return nil, fmt.Errorf("failed to get movie %d: %w: missing id", id, ErrMalformedResponse)
	}

	movie := c.normalizeMovie(details.toMovie())
	return &movie, nil
}

// GetMovieCredits retrieves the cast of a movie. Any failure is returned to the caller.
func (c *Client) GetMovieCredits(ctx context.Context, id int) (*MovieCredits, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMovieID, id)
	}

	var credits MovieCredits
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d/credits", id), &credits); err != nil {
		return nil, fmt.Errorf("failed to get credits for movie %d: %w", id, err)
	}

	if credits.ID == 0 {
		return nil, fmt.Errorf("failed to get credits for movie %d: %w: missing id", id, ErrMalformedResponse)
	}

	cast := make([]CastMember, 0, len(credits.Cast))
	for _, member := range credits.Cast {
		// Unnamed entries cannot be displayed
		if strings.TrimSpace(member.Name) == "" {
			c.logger.Debug().Int("movie_id", id).Int("cast_id", member.ID).Msg("Dropping unnamed cast member")
			continue
		}
		if member.ProfilePath != nil && *member.ProfilePath == "" {
			member.ProfilePath = nil
		}
		cast = append(cast, member)
	}
	credits.Cast = cast

	if credits.Crew == nil {
		credits.Crew = []json.RawMessage{}
	}

	return &credits, nil
}

// normalizeMovie applies the per-field defaults of the Movie record
func (c *Client) normalizeMovie(movie Movie) Movie {
	if movie.PosterPath != nil && *movie.PosterPath == "" {
		movie.PosterPath = nil
	}

	if movie.GenreIDs == nil {
		movie.GenreIDs = []int{}
	}

	if movie.VoteAverage < 0 || movie.VoteAverage > 10 {
		c.logger.Debug().
			Int("movie_id", movie.ID).
			Float64("vote_average", movie.VoteAverage).
			Msg("Clamping out of range vote average")
		movie.VoteAverage = min(max(movie.VoteAverage, 0), 10)
	}

	return movie
}
