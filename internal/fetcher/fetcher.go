package fetcher

import (
	"context"
	"io"
)

// Fetcher downloads remote resources, such as rendered screenshots.
type Fetcher interface {
	// Download fetches the URL and returns the response body. The caller
	// closes it.
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}
