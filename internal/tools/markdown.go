package tools

import (
	"context"
	"fmt"

	"github.com/sells-group/firecrawl-web/internal/model"
)

// Markdown prints a page as markdown, verbatim, even when it is empty.
func (t *Toolkit) Markdown(ctx context.Context, url string, mainOnly bool) error {
	res, err := t.svc.Markdown(ctx, model.ScrapeRequest{URL: url, MainContentOnly: mainOnly})
	if err != nil {
		return err
	}
	fmt.Fprintln(t.out, res.Markdown)
	return nil
}
