// Package testutil provides testing utilities for the fleetdeck console.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"fleetdeck/api"
)

// Ensure MockService implements api.Service.
var _ api.Service = (*MockService)(nil)

// MockService simulates the control-plane API for testing.
// Responses are configured per operation; every invocation is recorded
// for verification.
type MockService struct {
	mu    sync.Mutex
	calls []Call

	// Per-operation responses. A nil func yields the zero response.
	ListEdgesFn      func(ctx context.Context) ([]api.Edge, error)
	SiteConfigFn     func(ctx context.Context, siteID string) (api.SiteConfig, error)
	SaveSiteConfigFn func(ctx context.Context, siteID string, doc any) error
	GenerateTokenFn  func(ctx context.Context, siteID string) (string, error)
	EdgeConfigFn     func(ctx context.Context, edgeID string) (api.SiteConfig, error)
	HealthFn         func(ctx context.Context) error
}

// Call records one API invocation for verification.
type Call struct {
	Op     string // "ListEdges", "SiteConfig", "SaveSiteConfig", "GenerateToken", "EdgeConfig", "Health"
	SiteID string
	EdgeID string
	Doc    any // body forwarded by SaveSiteConfig
}

// NewMockService creates a new mock service.
func NewMockService() *MockService {
	return &MockService{}
}

func (m *MockService) record(c Call) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
}

// ListEdges implements api.Service.
func (m *MockService) ListEdges(ctx context.Context) ([]api.Edge, error) {
	m.record(Call{Op: "ListEdges"})
	if m.ListEdgesFn != nil {
		return m.ListEdgesFn(ctx)
	}
	return nil, nil
}

// SiteConfig implements api.Service.
func (m *MockService) SiteConfig(ctx context.Context, siteID string) (api.SiteConfig, error) {
	m.record(Call{Op: "SiteConfig", SiteID: siteID})
	if m.SiteConfigFn != nil {
		return m.SiteConfigFn(ctx, siteID)
	}
	return api.SiteConfig{}, nil
}

// SaveSiteConfig implements api.Service.
func (m *MockService) SaveSiteConfig(ctx context.Context, siteID string, doc any) error {
	m.record(Call{Op: "SaveSiteConfig", SiteID: siteID, Doc: doc})
	if m.SaveSiteConfigFn != nil {
		return m.SaveSiteConfigFn(ctx, siteID, doc)
	}
	return nil
}

// GenerateToken implements api.Service.
func (m *MockService) GenerateToken(ctx context.Context, siteID string) (string, error) {
	m.record(Call{Op: "GenerateToken", SiteID: siteID})
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, siteID)
	}
	return "", nil
}

// EdgeConfig implements api.Service.
func (m *MockService) EdgeConfig(ctx context.Context, edgeID string) (api.SiteConfig, error) {
	m.record(Call{Op: "EdgeConfig", EdgeID: edgeID})
	if m.EdgeConfigFn != nil {
		return m.EdgeConfigFn(ctx, edgeID)
	}
	return api.SiteConfig{}, nil
}

// Health implements api.Service.
func (m *MockService) Health(ctx context.Context) error {
	m.record(Call{Op: "Health"})
	if m.HealthFn != nil {
		return m.HealthFn(ctx)
	}
	return nil
}

// Calls returns all recorded invocations.
func (m *MockService) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]Call, len(m.calls))
	copy(result, m.calls)
	return result
}

// Reset clears all recorded calls (but keeps configured responses).
func (m *MockService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// Called returns true if any operation was invoked.
func (m *MockService) Called() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls) > 0
}

// CallCount returns the number of invocations of the given operation.
func (m *MockService) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, c := range m.calls {
		if c.Op == op {
			count++
		}
	}
	return count
}

// LastCall returns the most recent invocation of the given operation.
func (m *MockService) LastCall(op string) (Call, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.calls) - 1; i >= 0; i-- {
		if m.calls[i].Op == op {
			return m.calls[i], true
		}
	}
	return Call{}, false
}

// String returns a debug representation of the call.
func (c Call) String() string {
	switch {
	case c.SiteID != "":
		return fmt.Sprintf("%s(%s)", c.Op, c.SiteID)
	case c.EdgeID != "":
		return fmt.Sprintf("%s(%s)", c.Op, c.EdgeID)
	default:
		return c.Op
	}
}
