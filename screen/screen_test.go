package screen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/marquee/tmdb"
)

// mockCatalog implements tmdb.API for testing
type mockCatalog struct {
	popular    []tmdb.Movie
	upcoming   []tmdb.Movie
	genres     []tmdb.Genre
	movie      *tmdb.Movie
	credits    *tmdb.MovieCredits
	detailsErr error
	creditsErr error

	// Track calls for verification
	calls     atomic.Int32
	genresCtx context.Context
}

func (m *mockCatalog) ListPopularMovies(ctx context.Context) []tmdb.Movie {
	m.calls.Add(1)
	return m.popular
}

func (m *mockCatalog) ListUpcomingMovies(ctx context.Context) []tmdb.Movie {
	m.calls.Add(1)
	return m.upcoming
}

func (m *mockCatalog) ListGenres(ctx context.Context) []tmdb.Genre {
	m.calls.Add(1)
	m.genresCtx = ctx
	return m.genres
}

func (m *mockCatalog) GetMovieDetails(ctx context.Context, id int) (*tmdb.Movie, error) {
	m.calls.Add(1)
	if m.detailsErr != nil {
		return nil, m.detailsErr
	}
	return m.movie, nil
}

func (m *mockCatalog) GetMovieCredits(ctx context.Context, id int) (*tmdb.MovieCredits, error) {
	m.calls.Add(1)
	if m.creditsErr != nil {
		return nil, m.creditsErr
	}
	return m.credits, nil
}

func TestLoader_LoadHome(t *testing.T) {
	catalog := &mockCatalog{
		popular:  []tmdb.Movie{{ID: 1, Title: "Popular"}},
		upcoming: []tmdb.Movie{{ID: 2, Title: "Upcoming"}, {ID: 3, Title: "Later"}},
		genres:   []tmdb.Genre{{ID: 28, Name: "Action"}},
	}

	loader := NewLoader(catalog, zerolog.Nop())
	home, err := loader.LoadHome(context.Background())
	require.NoError(t, err)

	assert.Equal(t, catalog.popular, home.Popular)
	assert.Equal(t, catalog.upcoming, home.Upcoming)
	assert.Equal(t, tmdb.GenreIndex{28: "Action"}, home.Genres)
	assert.Equal(t, int32(3), catalog.calls.Load())
}

func TestLoader_LoadHomePartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movie/popular":
			json.NewEncoder(w).Encode(tmdb.MoviesResponse{Results: []tmdb.Movie{
				{ID: 550, Title: "Fight Club"},
				{ID: 603, Title: "The Matrix"},
			}})
		case "/movie/upcoming":
			w.WriteHeader(http.StatusServiceUnavailable)
		case "/genre/movie/list":
			json.NewEncoder(w).Encode(tmdb.GenresResponse{Genres: []tmdb.Genre{
				{ID: 18, Name: "Drama"},
			}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := tmdb.NewClient("test-key", zerolog.Nop(), tmdb.WithBaseURL(server.URL))
	loader := NewLoader(client, zerolog.Nop())

	home, err := loader.LoadHome(context.Background())
	require.NoError(t, err)

	require.Len(t, home.Popular, 2)
	assert.Equal(t, 550, home.Popular[0].ID)
	assert.Equal(t, 603, home.Popular[1].ID)

	assert.NotNil(t, home.Upcoming)
	assert.Empty(t, home.Upcoming)

	assert.Equal(t, tmdb.GenreIndex{18: "Drama"}, home.Genres)
}

func TestLoader_LoadHomeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(&mockCatalog{}, zerolog.Nop())
	home, err := loader.LoadHome(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, home)
}

func TestLoader_LoadDetail(t *testing.T) {
	poster := "/abc.jpg"
	catalog := &mockCatalog{
		movie: &tmdb.Movie{
			ID:         550,
			Title:      "Fight Club",
			PosterPath: &poster,
			GenreIDs:   []int{18, 53, 999},
		},
		credits: &tmdb.MovieCredits{
			ID:   550,
			Cast: []tmdb.CastMember{{ID: 819, Name: "Edward Norton", Character: "The Narrator"}},
		},
		genres: []tmdb.Genre{
			{ID: 18, Name: "Drama"},
			{ID: 53, Name: "Thriller"},
		},
	}

	loader := NewLoader(catalog, zerolog.Nop())
	detail, err := loader.LoadDetail(context.Background(), 550)
	require.NoError(t, err)

	assert.Equal(t, catalog.movie, detail.Movie)
	assert.Equal(t, catalog.credits, detail.Credits)
	assert.NoError(t, detail.CreditsErr)
	assert.Equal(t, []string{"Drama", "Thriller"}, detail.Genres)
}

func TestLoader_LoadDetailFailures(t *testing.T) {
	t.Run("details failure fails the load", func(t *testing.T) {
		catalog := &mockCatalog{
			detailsErr: &tmdb.APIError{StatusCode: http.StatusNotFound, Message: "Not Found"},
			credits:    &tmdb.MovieCredits{ID: 1},
		}

		loader := NewLoader(catalog, zerolog.Nop())
		detail, err := loader.LoadDetail(context.Background(), 1)
		require.Error(t, err)
		assert.Nil(t, detail)
		assert.True(t, errors.Is(err, tmdb.ErrNotFound))
		assert.Contains(t, err.Error(), "failed to load movie details")

		// Wait has returned, so the group context is cancelled by now
		require.NotNil(t, catalog.genresCtx)
		assert.NoError(t, catalog.genresCtx.Err())
	})

	t.Run("credits failure keeps the movie", func(t *testing.T) {
		creditsErr := errors.New("boom")
		catalog := &mockCatalog{
			movie:      &tmdb.Movie{ID: 1, Title: "Movie", GenreIDs: []int{}},
			creditsErr: creditsErr,
		}

		loader := NewLoader(catalog, zerolog.Nop())
		detail, err := loader.LoadDetail(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Movie", detail.Movie.Title)
		assert.Nil(t, detail.Credits)
		assert.ErrorIs(t, detail.CreditsErr, creditsErr)
		assert.Empty(t, detail.Genres)
	})
}

func TestLoader_LoadSection(t *testing.T) {
	catalog := &mockCatalog{
		popular:  []tmdb.Movie{{ID: 1, Title: "Popular", GenreIDs: []int{28}}},
		upcoming: []tmdb.Movie{{ID: 2, Title: "Upcoming"}},
		genres:   []tmdb.Genre{{ID: 28, Name: "Action"}},
	}
	loader := NewLoader(catalog, zerolog.Nop())

	tests := []struct {
		section  Section
		expected []tmdb.Movie
	}{
		{SectionPopular, catalog.popular},
		{SectionUpcoming, catalog.upcoming},
	}

	for _, tt := range tests {
		t.Run(string(tt.section), func(t *testing.T) {
			list, err := loader.LoadSection(context.Background(), tt.section)
			require.NoError(t, err)
			assert.Equal(t, tt.section, list.Section)
			assert.Equal(t, tt.expected, list.Movies)
			assert.Equal(t, tmdb.GenreIndex{28: "Action"}, list.Genres)
		})
	}

	t.Run("unknown section", func(t *testing.T) {
		_, err := loader.LoadSection(context.Background(), Section("trending"))
		assert.Error(t, err)
	})
}
