package provider

import (
	"context"
	"slices"
	"sync"
)

// MockHyphenator is a mock oracle for testing. Words missing from Splits
// come back whole.
type MockHyphenator struct {
	Splits map[string][]string // Map of word to syllables
	Err    error               // Returned by every call when set

	mu          sync.Mutex
	callCount   int
	lastRequest *HyphenateRequest
}

// NewMockHyphenator creates a mock with a few Italian splits.
func NewMockHyphenator() *MockHyphenator {
	return &MockHyphenator{
		Splits: map[string][]string{
			"cafe":   {"ca", "fe"},
			"casa":   {"ca", "sa"},
			"parola": {"pa", "ro", "la"},
			"hello":  {"hel", "lo"},
		},
	}
}

// Hyphenate returns the configured splits.
func (m *MockHyphenator) Hyphenate(ctx context.Context, req HyphenateRequest) ([][]string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastRequest = &req
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	results := make([][]string, len(req.Words))
	for i, w := range req.Words {
		if syls, ok := m.Splits[w]; ok {
			results[i] = slices.Clone(syls)
		} else {
			results[i] = []string{w}
		}
	}
	return results, nil
}

// CallCount returns the number of Hyphenate calls.
func (m *MockHyphenator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastRequest returns the most recent request, or nil.
func (m *MockHyphenator) LastRequest() *HyphenateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastRequest
}

// Reset resets the call count and last request.
func (m *MockHyphenator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastRequest = nil
}

var _ Hyphenator = (*MockHyphenator)(nil)
