package model

import "unicode/utf8"

// UntitledPage is shown for crawled pages that carry no title.
const UntitledPage = "Untitled"

// PageMetadata is the page metadata reported by the scraping service.
type PageMetadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	SourceURL   string `json:"source_url,omitempty"`
	StatusCode  int    `json:"status_code,omitempty"`
}

// CrawlPage is one page of a crawl, in the order the service returned it.
type CrawlPage struct {
	Index    int           `json:"index"`
	Markdown string        `json:"markdown,omitempty"`
	Metadata *PageMetadata `json:"metadata,omitempty"`
}

// DisplayTitle returns the page title, or UntitledPage when the page has no
// metadata or an empty title.
func (p CrawlPage) DisplayTitle() string {
	if p.Metadata == nil || p.Metadata.Title == "" {
		return UntitledPage
	}
	return p.Metadata.Title
}

// Preview returns at most n characters (not bytes) of the page markdown.
func (p CrawlPage) Preview(n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(p.Markdown) <= n {
		return p.Markdown
	}
	runes := 0
	for i := range p.Markdown {
		if runes == n {
			return p.Markdown[:i]
		}
		runes++
	}
	return p.Markdown
}
