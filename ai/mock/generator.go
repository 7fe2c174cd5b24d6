package mock

import "context"

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, a minimal valid article JSON is returned.
	GenerateFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	callCount int
}

// NewMockGenerator creates a mock generator with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via CallCount().
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate returns the injected response, or a minimal valid article JSON.
func (m *MockGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.callCount++

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, systemPrompt, userPrompt)
	}

	return `{"title":"Titolo","title_en":"Title","summary":"Sommario","summary_en":"Summary",` +
		`"content":"## Introduzione\n\nTesto.","content_en":"## Introduction\n\nText.","category":"Other"}`, nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.GenerateFunc = nil
}
