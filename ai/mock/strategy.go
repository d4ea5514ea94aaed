package mock

import (
	"context"
	"sync"

	"github.com/poiesic/lanelist/ai"
	"github.com/poiesic/lanelist/core"
)

// MockStrategy is a test double for ai.Strategy.
// It allows custom behavior injection via function fields.
type MockStrategy struct {
	// NameValue is returned by Name. Defaults to "mock".
	NameValue string

	// GenerateFunc is called by Generate if set.
	// If nil, Generate returns a single fixed suggestion.
	GenerateFunc func(ctx context.Context, filter *core.SearchFilter) ([]core.Suggestion, error)

	mu        sync.Mutex
	callCount int
}

var _ ai.Strategy = (*MockStrategy)(nil)

// NewMockStrategy creates a mock strategy with default behavior.
func NewMockStrategy() *MockStrategy {
	return &MockStrategy{NameValue: "mock"}
}

// Name returns the configured strategy name.
func (m *MockStrategy) Name() string {
	if m.NameValue == "" {
		return "mock"
	}
	return m.NameValue
}

// Generate returns a single fixed suggestion unless GenerateFunc is set.
func (m *MockStrategy) Generate(ctx context.Context, filter *core.SearchFilter) ([]core.Suggestion, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, filter)
	}

	confidence := ai.DefaultConfidence
	return []core.Suggestion{
		{
			Carrier: core.Carrier{
				ID:    "mock-1",
				Name:  "Mock Carrier",
				Types: []core.TransportType{core.TransportTruck},
				Lanes: []core.Lane{{Origin: "FR", Destination: "DE"}},
			},
			Source:     core.SourceAI,
			Confidence: &confidence,
		},
	}, nil
}

// CallCount returns the number of times Generate was called.
func (m *MockStrategy) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockStrategy) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.GenerateFunc = nil
}
