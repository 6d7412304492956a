package tmdb

import "net/http"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
// The client's own transport settings, including any timeout, apply as is.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithLanguage sets the language query parameter sent with every request.
func WithLanguage(language string) Option {
	return func(o *clientOptions) {
		o.language = language
	}
}
