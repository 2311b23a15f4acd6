package model

import "encoding/json"

// ScrapeRequest describes a single-page scrape.
type ScrapeRequest struct {
	URL string `json:"url"`
	// MainContentOnly asks the service to drop navigation and footer
	// boilerplate. When false the option is not sent at all.
	MainContentOnly bool `json:"main_content_only,omitempty"`
}

// ScrapeResult holds the fields a scrape may return. Any of them can be
// empty depending on the requested formats and the page.
type ScrapeResult struct {
	Markdown string `json:"markdown,omitempty"`
	// Screenshot is either a remote image URL or a base64 data URI.
	Screenshot string          `json:"screenshot,omitempty"`
	JSON       json.RawMessage `json:"json,omitempty"`
}

// SearchResult is one web search hit, in service relevance order.
type SearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}
