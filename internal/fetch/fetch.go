// Package fetch retrieves remote text documents over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultUserAgent is sent when a Client is created without one.
const DefaultUserAgent = "landing/dev"

// FetchError reports a failed GET. StatusCode is set when the server answered
// with a non-success status; Err is set on transport failures.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: HTTP %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client issues single GET requests. It never retries or caches.
type Client struct {
	http      *http.Client
	userAgent string
}

// New creates a Client. A zero timeout means requests are bounded only by
// their context. An empty userAgent uses DefaultUserAgent.
func New(timeout time.Duration, userAgent string) *Client {
	return NewWithHTTPClient(&http.Client{Timeout: timeout}, userAgent)
}

// NewWithHTTPClient wraps an existing http.Client.
func NewWithHTTPClient(c *http.Client, userAgent string) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{http: c, userAgent: userAgent}
}

// UserAgent returns the User-Agent header the client sends.
func (c *Client) UserAgent() string { return c.userAgent }

// Get fetches url and returns the response body as text.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}
	return string(body), nil
}
