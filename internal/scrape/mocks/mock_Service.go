// Package mocks provides test doubles for the scrape service.
package mocks

import (
	"context"
	"encoding/json"

	model "github.com/sells-group/firecrawl-web/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockService is a mock type for the Service interface.
type MockService struct {
	mock.Mock
}

// Markdown provides a mock function with given fields: ctx, req
func (_m *MockService) Markdown(ctx context.Context, req model.ScrapeRequest) (*model.ScrapeResult, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Markdown")
	}

	var r0 *model.ScrapeResult
	if rf, ok := ret.Get(0).(func(context.Context, model.ScrapeRequest) (*model.ScrapeResult, error)); ok {
		return rf(ctx, req)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ScrapeResult)
	}

	return r0, ret.Error(1)
}

// Screenshot provides a mock function with given fields: ctx, url
func (_m *MockService) Screenshot(ctx context.Context, url string) (*model.ScrapeResult, error) {
	ret := _m.Called(ctx, url)

	if len(ret) == 0 {
		panic("no return value specified for Screenshot")
	}

	var r0 *model.ScrapeResult
	if rf, ok := ret.Get(0).(func(context.Context, string) (*model.ScrapeResult, error)); ok {
		return rf(ctx, url)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ScrapeResult)
	}

	return r0, ret.Error(1)
}

// Extract provides a mock function with given fields: ctx, url, schema, prompt
func (_m *MockService) Extract(ctx context.Context, url string, schema json.RawMessage, prompt string) (*model.ScrapeResult, error) {
	ret := _m.Called(ctx, url, schema, prompt)

	if len(ret) == 0 {
		panic("no return value specified for Extract")
	}

	var r0 *model.ScrapeResult
	if rf, ok := ret.Get(0).(func(context.Context, string, json.RawMessage, string) (*model.ScrapeResult, error)); ok {
		return rf(ctx, url, schema, prompt)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ScrapeResult)
	}

	return r0, ret.Error(1)
}

// Search provides a mock function with given fields: ctx, query, limit
func (_m *MockService) Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error) {
	ret := _m.Called(ctx, query, limit)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 []model.SearchResult
	if rf, ok := ret.Get(0).(func(context.Context, string, int) ([]model.SearchResult, error)); ok {
		return rf(ctx, query, limit)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.SearchResult)
	}

	return r0, ret.Error(1)
}

// Crawl provides a mock function with given fields: ctx, url, limit
func (_m *MockService) Crawl(ctx context.Context, url string, limit int) ([]model.CrawlPage, error) {
	ret := _m.Called(ctx, url, limit)

	if len(ret) == 0 {
		panic("no return value specified for Crawl")
	}

	var r0 []model.CrawlPage
	if rf, ok := ret.Get(0).(func(context.Context, string, int) ([]model.CrawlPage, error)); ok {
		return rf(ctx, url, limit)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.CrawlPage)
	}

	return r0, ret.Error(1)
}

// NewMockService creates a new instance of MockService.
func NewMockService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockService {
	m := &MockService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
