package docsearch

import "context"

// Fetcher retrieves raw response bodies from URLs.
type Fetcher interface {
	// Fetch issues a GET request and returns the body.
	// A response outside the 2xx range yields a *StatusError and no body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
