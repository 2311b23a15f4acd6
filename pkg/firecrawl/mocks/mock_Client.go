// Package mocks provides test doubles for the firecrawl client.
package mocks

import (
	"context"

	firecrawl "github.com/sells-group/firecrawl-web/pkg/firecrawl"
	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// Scrape provides a mock function with given fields: ctx, req
func (_m *MockClient) Scrape(ctx context.Context, req firecrawl.ScrapeRequest) (*firecrawl.ScrapeResponse, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Scrape")
	}

	var r0 *firecrawl.ScrapeResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, firecrawl.ScrapeRequest) (*firecrawl.ScrapeResponse, error)); ok {
		return rf(ctx, req)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*firecrawl.ScrapeResponse)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// Search provides a mock function with given fields: ctx, req
func (_m *MockClient) Search(ctx context.Context, req firecrawl.SearchRequest) (*firecrawl.SearchResponse, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 *firecrawl.SearchResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, firecrawl.SearchRequest) (*firecrawl.SearchResponse, error)); ok {
		return rf(ctx, req)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*firecrawl.SearchResponse)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// Crawl provides a mock function with given fields: ctx, req
func (_m *MockClient) Crawl(ctx context.Context, req firecrawl.CrawlRequest) (*firecrawl.CrawlResponse, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Crawl")
	}

	var r0 *firecrawl.CrawlResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, firecrawl.CrawlRequest) (*firecrawl.CrawlResponse, error)); ok {
		return rf(ctx, req)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*firecrawl.CrawlResponse)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// GetCrawlStatus provides a mock function with given fields: ctx, id
func (_m *MockClient) GetCrawlStatus(ctx context.Context, id string) (*firecrawl.CrawlStatusResponse, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetCrawlStatus")
	}

	var r0 *firecrawl.CrawlStatusResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*firecrawl.CrawlStatusResponse, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*firecrawl.CrawlStatusResponse)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// GetCrawlStatusPage provides a mock function with given fields: ctx, nextURL
func (_m *MockClient) GetCrawlStatusPage(ctx context.Context, nextURL string) (*firecrawl.CrawlStatusResponse, error) {
	ret := _m.Called(ctx, nextURL)

	if len(ret) == 0 {
		panic("no return value specified for GetCrawlStatusPage")
	}

	var r0 *firecrawl.CrawlStatusResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*firecrawl.CrawlStatusResponse, error)); ok {
		return rf(ctx, nextURL)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*firecrawl.CrawlStatusResponse)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// NewMockClient creates a new instance of MockClient. It also registers a
// cleanup function to assert the mocks expectations.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	m := &MockClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
