package main

import (
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sells-group/firecrawl-web/internal/config"
	"github.com/sells-group/firecrawl-web/internal/cost"
	"github.com/sells-group/firecrawl-web/internal/fetcher"
	"github.com/sells-group/firecrawl-web/internal/resilience"
	"github.com/sells-group/firecrawl-web/internal/scrape"
	"github.com/sells-group/firecrawl-web/internal/tools"
	"github.com/sells-group/firecrawl-web/pkg/firecrawl"
)

// outputFs is where screenshots and crawled pages are written.
var outputFs = afero.NewOsFs()

// newToolkit wires the Firecrawl client, the screenshot downloader and the
// output filesystem from the loaded config.
func newToolkit(cmd *cobra.Command, c *config.Config) *tools.Toolkit {
	client := firecrawl.NewClient(c.Firecrawl.Key,
		firecrawl.WithBaseURL(c.Firecrawl.BaseURL),
		firecrawl.WithTimeout(time.Duration(c.Firecrawl.TimeoutSecs)*time.Second),
		firecrawl.WithRetryPolicy(resilience.NewPolicy(c.Firecrawl.MaxRetries, c.Firecrawl.RetryBackoffMs)),
	)

	svc := scrape.NewFirecrawlService(client,
		firecrawl.WithPollInterval(time.Duration(c.Crawl.PollIntervalSecs)*time.Second),
		firecrawl.WithPollCap(time.Duration(c.Crawl.PollCapSecs)*time.Second),
		firecrawl.WithPollTimeout(time.Duration(c.Crawl.TimeoutSecs)*time.Second),
	).WithCost(cost.NewCalculator(cost.Rates{
		PlanMonthly:     c.Pricing.PlanMonthly,
		CreditsIncluded: c.Pricing.CreditsIncluded,
	}))

	dlRetry := resilience.NewPolicy(c.Screenshot.MaxRetries, c.Screenshot.RetryBackoffMs)
	dl := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:  c.Screenshot.UserAgent,
		Timeout:    time.Duration(c.Screenshot.TimeoutSecs) * time.Second,
		MaxRetries: c.Screenshot.MaxRetries,
		RatePerSec: c.Screenshot.RatePerSec,
		Retry:      &dlRetry,
	})

	return tools.New(svc, dl, outputFs, cmd.OutOrStdout())
}
