package scrape

import (
	"context"
	"encoding/json"

	"github.com/sells-group/firecrawl-web/internal/model"
)

// Service is the set of remote web operations behind the fc commands. Each
// method is a single logical round trip to the scraping service.
type Service interface {
	// Markdown scrapes a page as markdown.
	Markdown(ctx context.Context, req model.ScrapeRequest) (*model.ScrapeResult, error)
	// Screenshot renders a page and returns an image URL or data URI.
	Screenshot(ctx context.Context, url string) (*model.ScrapeResult, error)
	// Extract returns page content as JSON conforming to schema.
	Extract(ctx context.Context, url string, schema json.RawMessage, prompt string) (*model.ScrapeResult, error)
	// Search runs a web search and returns hits in relevance order.
	Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error)
	// Crawl walks a site from url and returns up to limit pages.
	Crawl(ctx context.Context, url string, limit int) ([]model.CrawlPage, error)
}
