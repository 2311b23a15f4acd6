package tools

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// DefaultCrawlLimit caps the number of pages crawled when none is given.
const DefaultCrawlLimit = 50

// crawlPreviewChars is how much of each page is printed to stdout.
const crawlPreviewChars = 1000

// Crawl walks a site. With a directory, every page's markdown is written to
// page_NNN.md inside it; without one, a title and a preview of each page
// are printed. Files written before a failure are left in place.
func (t *Toolkit) Crawl(ctx context.Context, url string, limit int, dir string) error {
	pages, err := t.svc.Crawl(ctx, url, limit)
	if err != nil {
		return err
	}

	if dir == "" {
		for _, p := range pages {
			fmt.Fprintf(t.out, "## %s\n", p.DisplayTitle())
			fmt.Fprintln(t.out, p.Preview(crawlPreviewChars))
			fmt.Fprint(t.out, separator)
		}
		return nil
	}

	if err := t.fs.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrapf(err, "create output directory %s", dir)
	}
	for i, p := range pages {
		if err := writeFile(t.fs, filepath.Join(dir, PageFileName(i)), []byte(p.Markdown)); err != nil {
			return err
		}
	}
	zap.L().Debug("crawl written", zap.String("dir", dir), zap.Int("pages", len(pages)))

	fmt.Fprintf(t.out, "Saved %d pages to %s/\n", len(pages), dir)
	return nil
}

// PageFileName names the file for the i-th crawled page.
func PageFileName(i int) string {
	return fmt.Sprintf("page_%03d.md", i)
}
