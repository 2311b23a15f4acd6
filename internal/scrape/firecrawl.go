package scrape

import (
	"context"
	"encoding/json"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/firecrawl-web/internal/cost"
	"github.com/sells-group/firecrawl-web/internal/model"
	"github.com/sells-group/firecrawl-web/pkg/firecrawl"
)

// FirecrawlService implements Service on top of the Firecrawl API.
type FirecrawlService struct {
	client firecrawl.Client
	poll   []firecrawl.PollOption
	cost   *cost.Calculator
}

// NewFirecrawlService wraps a Firecrawl client. pollOpts tune how crawl
// jobs are awaited.
func NewFirecrawlService(client firecrawl.Client, pollOpts ...firecrawl.PollOption) *FirecrawlService {
	return &FirecrawlService{client: client, poll: pollOpts}
}

// WithCost prices the credits each crawl reports using calc.
func (s *FirecrawlService) WithCost(calc *cost.Calculator) *FirecrawlService {
	s.cost = calc
	return s
}

// Markdown implements Service.
func (s *FirecrawlService) Markdown(ctx context.Context, req model.ScrapeRequest) (*model.ScrapeResult, error) {
	fr := firecrawl.ScrapeRequest{
		URL:     req.URL,
		Formats: firecrawl.Formats(firecrawl.FormatMarkdown),
	}
	if req.MainContentOnly {
		fr.OnlyMainContent = firecrawl.Bool(true)
	}
	return s.scrape(ctx, fr)
}

// Screenshot implements Service.
func (s *FirecrawlService) Screenshot(ctx context.Context, url string) (*model.ScrapeResult, error) {
	return s.scrape(ctx, firecrawl.ScrapeRequest{
		URL:     url,
		Formats: firecrawl.Formats(firecrawl.FormatScreenshot),
	})
}

// Extract implements Service.
func (s *FirecrawlService) Extract(ctx context.Context, url string, schema json.RawMessage, prompt string) (*model.ScrapeResult, error) {
	return s.scrape(ctx, firecrawl.ScrapeRequest{
		URL:     url,
		Formats: []firecrawl.Format{firecrawl.JSONFormat(schema, prompt)},
	})
}

func (s *FirecrawlService) scrape(ctx context.Context, req firecrawl.ScrapeRequest) (*model.ScrapeResult, error) {
	resp, err := s.client.Scrape(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, eris.Errorf("firecrawl: scrape of %s not successful", req.URL)
	}
	if resp.Warning != "" {
		zap.L().Warn("firecrawl scrape warning", zap.String("url", req.URL), zap.String("warning", resp.Warning))
	}
	return &model.ScrapeResult{
		Markdown:   resp.Data.Markdown,
		Screenshot: resp.Data.Screenshot,
		JSON:       resp.Data.JSON,
	}, nil
}

// Search implements Service.
func (s *FirecrawlService) Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error) {
	resp, err := s.client.Search(ctx, firecrawl.SearchRequest{Query: query, Limit: limit})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, eris.Errorf("firecrawl: search for %q not successful", query)
	}

	results := make([]model.SearchResult, 0, len(resp.Data.Web))
	for _, r := range resp.Data.Web {
		results = append(results, model.SearchResult{
			Title:       r.Title,
			URL:         r.URL,
			Description: r.Description,
		})
	}
	return results, nil
}

// Crawl implements Service. Every crawled page is scraped as main-content
// markdown; the call returns once the crawl job has finished.
func (s *FirecrawlService) Crawl(ctx context.Context, url string, limit int) ([]model.CrawlPage, error) {
	status, err := firecrawl.CrawlAndWait(ctx, s.client, firecrawl.CrawlRequest{
		URL:   url,
		Limit: limit,
		ScrapeOptions: &firecrawl.ScrapeOptions{
			Formats:         firecrawl.Formats(firecrawl.FormatMarkdown),
			OnlyMainContent: firecrawl.Bool(true),
		},
	}, s.poll...)
	if err != nil {
		return nil, err
	}

	pages := make([]model.CrawlPage, 0, len(status.Data))
	for i, doc := range status.Data {
		page := model.CrawlPage{Index: i, Markdown: doc.Markdown}
		if doc.Metadata != nil {
			page.Metadata = &model.PageMetadata{
				Title:       doc.Metadata.Title,
				Description: doc.Metadata.Description,
				SourceURL:   doc.Metadata.SourceURL,
				StatusCode:  doc.Metadata.StatusCode,
			}
		}
		pages = append(pages, page)
	}

	fields := []zap.Field{zap.String("url", url), zap.Int("pages", len(pages)), zap.Int("credits", status.CreditsUsed)}
	if s.cost != nil {
		fields = append(fields, zap.Float64("cost_usd", s.cost.Credits(status.CreditsUsed)))
	}
	zap.L().Info("firecrawl crawl finished", fields...)
	return pages, nil
}
