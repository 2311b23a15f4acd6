package firecrawl

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const (
	defaultPollInitial = 2 * time.Second
	defaultPollCap     = 15 * time.Second
	defaultPollTimeout = 10 * time.Minute
)

// Crawl job states reported by GET /crawl/{id}.
const (
	StatusScraping  = "scraping"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// PollOption configures polling behavior.
type PollOption func(*pollConfig)

type pollConfig struct {
	initial time.Duration
	cap     time.Duration
	timeout time.Duration
}

func defaultPollConfig() pollConfig {
	return pollConfig{
		initial: defaultPollInitial,
		cap:     defaultPollCap,
		timeout: defaultPollTimeout,
	}
}

// WithPollInterval overrides the initial poll interval.
func WithPollInterval(d time.Duration) PollOption {
	return func(c *pollConfig) {
		if d > 0 {
			c.initial = d
		}
	}
}

// WithPollCap overrides the maximum poll interval.
func WithPollCap(d time.Duration) PollOption {
	return func(c *pollConfig) {
		if d > 0 {
			c.cap = d
		}
	}
}

// WithPollTimeout overrides the default timeout (applied only if the parent
// context has no deadline).
func WithPollTimeout(d time.Duration) PollOption {
	return func(c *pollConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// CrawlAndWait starts a crawl and blocks until every page is available.
func CrawlAndWait(ctx context.Context, client Client, req CrawlRequest, opts ...PollOption) (*CrawlStatusResponse, error) {
	started, err := client.Crawl(ctx, req)
	if err != nil {
		return nil, err
	}
	if !started.Success || started.ID == "" {
		return nil, eris.Errorf("firecrawl: crawl of %s was not accepted", req.URL)
	}

	zap.L().Debug("firecrawl crawl started",
		zap.String("id", started.ID),
		zap.String("url", req.URL),
		zap.Int("limit", req.Limit),
	)

	return PollCrawl(ctx, client, started.ID, opts...)
}

// PollCrawl polls GetCrawlStatus until the crawl completes, fails, or the
// context expires, then follows "next" links so the returned response holds
// every page. Uses exponential backoff: 2s -> 4s -> 8s -> 15s (capped).
func PollCrawl(ctx context.Context, client Client, id string, opts ...PollOption) (*CrawlStatusResponse, error) {
	cfg := defaultPollConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	interval := cfg.initial
	for {
		status, err := client.GetCrawlStatus(ctx, id)
		if err != nil {
			return nil, eris.Wrapf(err, "firecrawl: poll crawl %s", id)
		}

		switch status.Status {
		case StatusCompleted:
			return collectPages(ctx, client, id, status)
		case StatusFailed, StatusCancelled:
			return nil, eris.Errorf("firecrawl: crawl %s %s", id, status.Status)
		case StatusScraping:
		default:
			if status.Status == "" || (status.Success != nil && !*status.Success) {
				reason := status.Error
				if reason == "" {
					reason = "no status reported"
				}
				return nil, eris.Errorf("firecrawl: crawl %s status check failed: %s", id, reason)
			}
		}

		zap.L().Debug("firecrawl crawl in progress",
			zap.String("id", id),
			zap.String("status", status.Status),
			zap.Int("completed", status.Completed),
			zap.Int("total", status.Total),
		)

		select {
		case <-ctx.Done():
			return nil, eris.Wrapf(ctx.Err(), "firecrawl: poll crawl %s timed out", id)
		case <-time.After(interval):
		}

		interval *= 2
		if interval > cfg.cap {
			interval = cfg.cap
		}
	}
}

// collectPages appends every paginated chunk to first and clears Next.
func collectPages(ctx context.Context, client Client, id string, first *CrawlStatusResponse) (*CrawlStatusResponse, error) {
	next := first.Next
	for next != "" {
		page, err := client.GetCrawlStatusPage(ctx, next)
		if err != nil {
			return nil, eris.Wrapf(err, "firecrawl: fetch crawl %s results", id)
		}
		first.Data = append(first.Data, page.Data...)
		if page.Next == next {
			break
		}
		next = page.Next
	}
	first.Next = ""
	return first, nil
}
