// Package tmdb provides a client for the TMDB v3 movie catalog.
//
// The client wraps the handful of read-only endpoints a movie browser needs
// and maps their JSON payloads to typed records:
//
//   - ListPopularMovies: /movie/popular
//   - ListUpcomingMovies: /movie/upcoming
//   - ListGenres: /genre/movie/list
//   - GetMovieDetails: /movie/{id}
//   - GetMovieCredits: /movie/{id}/credits
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client := tmdb.NewClient(os.Getenv("TMDB_API_KEY"), logger)
//
//	ctx := context.Background()
//	popular := client.ListPopularMovies(ctx)
//
//	movie, err := client.GetMovieDetails(ctx, 550)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Failure policy
//
// List operations degrade: any transport, status or decoding failure is
// logged and an empty, non-nil slice is returned. Single-item operations
// return the error so a missing movie is never confused with an empty record.
//
// Only the first page of each list is requested. Nothing is retried or cached.
//
// # Error Handling
//
// Non-2xx responses are reported as *APIError. The sentinels ErrNotFound and
// ErrUnauthorized match it through errors.Is:
//
//	if errors.Is(err, tmdb.ErrNotFound) {
//		// unknown movie id
//	}
package tmdb
