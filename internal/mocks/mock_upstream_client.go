package mocks

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pearmediallc/symphony-ai/domain"
)

// UpstreamCall records one call made through the mock client.
type UpstreamCall struct {
	Method string
	Path   string
	Token  string
	Query  url.Values
	Body   any
}

// MockUpstreamClient implements domain.UpstreamClient for testing. It counts
// calls so tests can assert that validation failures never reach upstream.
type MockUpstreamClient struct {
	CallFunc func(ctx context.Context, method, path, token string, query url.Values, body any) (*domain.UpstreamResult, error)
	Calls    []UpstreamCall
}

// NewMockUpstreamClient creates a new MockUpstreamClient with default behaviors
func NewMockUpstreamClient() *MockUpstreamClient {
	return &MockUpstreamClient{}
}

// Call records the call and delegates to CallFunc
func (m *MockUpstreamClient) Call(ctx context.Context, method, path, token string, query url.Values, body any) (*domain.UpstreamResult, error) {
	m.Calls = append(m.Calls, UpstreamCall{Method: method, Path: path, Token: token, Query: query, Body: body})
	if m.CallFunc != nil {
		return m.CallFunc(ctx, method, path, token, query, body)
	}
	// Default behavior: logical success
	return &domain.UpstreamResult{
		Status: http.StatusOK,
		Body:   map[string]any{"code": "0", "message": "OK", "data": map[string]any{}},
	}, nil
}

// CallCount reports how many upstream calls were attempted
func (m *MockUpstreamClient) CallCount() int { return len(m.Calls) }

// LastCall returns the most recent recorded call, or nil
func (m *MockUpstreamClient) LastCall() *UpstreamCall {
	if len(m.Calls) == 0 {
		return nil
	}
	return &m.Calls[len(m.Calls)-1]
}
