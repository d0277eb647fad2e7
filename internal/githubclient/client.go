// Package githubclient builds configured GitHub API clients.
package githubclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
)

// New creates a client authenticated with token. baseURL overrides the API
// endpoint when non-empty; timeout bounds each call when non-zero.
func New(token, baseURL string, timeout time.Duration) (*github.Client, error) {
	var httpClient *http.Client
	if timeout > 0 {
		httpClient = &http.Client{Timeout: timeout}
	}

	client := github.NewClient(httpClient).WithAuthToken(token)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing GitHub base URL %q: %w", baseURL, err)
		}
		client.BaseURL = parsed
	}

	return client, nil
}
