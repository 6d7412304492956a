package tmdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidMovieID indicates a movie identifier that cannot exist in the catalog
	ErrInvalidMovieID = errors.New("invalid movie id")
	// ErrMalformedResponse indicates a response body that does not match the expected shape
	ErrMalformedResponse = errors.New("malformed response from TMDB")
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized indicates authentication failure
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
)

// APIError represents a non-success response from the TMDB API
type APIError struct {
	StatusCode int
	// Code is the TMDB status_code from the error body, 0 if absent
	Code    int
	Message string
	Body    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Is lets errors.Is match ErrNotFound and ErrUnauthorized
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.IsNotFound()
	case ErrUnauthorized:
		return e.IsUnauthorized()
	}
	return false
}

// errorBody is the error payload TMDB attaches to failed requests
type errorBody struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
		Body:       string(body),
	}

	var payload errorBody
	if err := json.Unmarshal(body, &payload); err == nil && payload.StatusMessage != "" {
		apiErr.Code = payload.StatusCode
		apiErr.Message = payload.StatusMessage
	}

	return apiErr
}
