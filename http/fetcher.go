// Package http provides an HTTP-based implementation of zinebox.Fetcher
// for downloading archive index pages and issue tarballs.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/zinebox"
)

// DefaultFetchTimeout is the default timeout for HTTP requests. Issue
// tarballs run to a few megabytes, so this is more generous than a
// page-fetch timeout would be.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements zinebox.Fetcher at compile time.
var _ zinebox.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw bytes from URLs using plain HTTP requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the response body from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zinebox.Errorf(zinebox.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, zinebox.Errorf(zinebox.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, zinebox.Errorf(zinebox.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zinebox.Errorf(zinebox.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return body, nil
}
