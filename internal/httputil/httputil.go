// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the fetch, search,
// and registry clients. There is deliberately no retry or backoff:
// transient failures surface immediately to the caller.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/edsu/idloc/pkg/types"
)

// ErrNotFound reports that the remote service answered 404 for the
// requested identifier. Test with errors.Is.
var ErrNotFound = errors.New("not found")

// StatusError reports a non-success HTTP status other than 404.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("id.loc.gov returned HTTP %d for %s", e.StatusCode, e.URL)
}

// NewClient returns an HTTP client configured from cfg.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// Get issues a single GET request with the given User-Agent and Accept
// headers. An empty accept leaves the header unset. The response body
// is the caller's to close.
func Get(ctx context.Context, client *http.Client, url, userAgent, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return client.Do(req)
}

// CheckStatus maps a response status to the error taxonomy: nil for
// 2xx, ErrNotFound for 404, *StatusError otherwise.
func CheckStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", resp.Request.URL, ErrNotFound)
	default:
		return &StatusError{URL: resp.Request.URL.String(), StatusCode: resp.StatusCode}
	}
}

// Wait sleeps for d or until the context is cancelled, whichever comes
// first. A non-positive d returns immediately.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
