package zinebox

import "context"

// Fetcher retrieves the raw bytes of a single remote resource.
type Fetcher interface {
	// Fetch downloads url and returns the response body. A non-success
	// response status is an error (EUNAVAILABLE); the body is never
	// interpreted. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
