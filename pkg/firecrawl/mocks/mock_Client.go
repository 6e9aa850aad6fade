// Package mocks provides test doubles for the firecrawl client.
package mocks

import (
	"context"

	firecrawl "github.com/sells-group/firecrawl-cmd/pkg/firecrawl"
	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// MockClient_Expecter provides typed expectation helpers.
type MockClient_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter for MockClient.
func (_m *MockClient) EXPECT() *MockClient_Expecter {
	return &MockClient_Expecter{mock: &_m.Mock}
}

// Fetch provides a mock function with given fields: ctx, verb, targetURL
func (_m *MockClient) Fetch(ctx context.Context, verb firecrawl.Verb, targetURL string) (*firecrawl.ScrapeResponse, error) {
	ret := _m.Called(ctx, verb, targetURL)

	if len(ret) == 0 {
		panic("no return value specified for Fetch")
	}

	var r0 *firecrawl.ScrapeResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, firecrawl.Verb, string) (*firecrawl.ScrapeResponse, error)); ok {
		return rf(ctx, verb, targetURL)
	}
	if rf, ok := ret.Get(0).(func(context.Context, firecrawl.Verb, string) *firecrawl.ScrapeResponse); ok {
		r0 = rf(ctx, verb, targetURL)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*firecrawl.ScrapeResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, firecrawl.Verb, string) error); ok {
		r1 = rf(ctx, verb, targetURL)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockClient_Fetch_Call wraps mock.Call for Fetch.
type MockClient_Fetch_Call struct {
	*mock.Call
}

// Fetch is a helper method to define mock.On call
//   - ctx context.Context
//   - verb firecrawl.Verb
//   - targetURL string
func (_e *MockClient_Expecter) Fetch(ctx interface{}, verb interface{}, targetURL interface{}) *MockClient_Fetch_Call {
	return &MockClient_Fetch_Call{Call: _e.mock.On("Fetch", ctx, verb, targetURL)}
}

// Run sets a function to run when Fetch is called.
func (_c *MockClient_Fetch_Call) Run(run func(ctx context.Context, verb firecrawl.Verb, targetURL string)) *MockClient_Fetch_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(firecrawl.Verb), args[2].(string))
	})
	return _c
}

// Return sets the values returned by Fetch.
func (_c *MockClient_Fetch_Call) Return(_a0 *firecrawl.ScrapeResponse, _a1 error) *MockClient_Fetch_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewMockClient creates a new instance of MockClient.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	mock := &MockClient{}
	mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
