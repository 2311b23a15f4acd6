// Package tools implements the fc commands: each runs one operation against
// a scrape.Service and renders the result to stdout text or files.
package tools

import (
	"io"

	"github.com/spf13/afero"

	"github.com/sells-group/firecrawl-web/internal/fetcher"
	"github.com/sells-group/firecrawl-web/internal/scrape"
)

// Toolkit holds what the commands need: the remote service, a downloader
// for hosted screenshots, the filesystem for output files and the stream
// results are printed to.
type Toolkit struct {
	svc     scrape.Service
	fetcher fetcher.Fetcher
	fs      afero.Fs
	out     io.Writer
}

// New creates a Toolkit.
func New(svc scrape.Service, f fetcher.Fetcher, fs afero.Fs, out io.Writer) *Toolkit {
	return &Toolkit{svc: svc, fetcher: f, fs: fs, out: out}
}
