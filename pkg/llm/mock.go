package llm

import "context"

// MockCorrector is a configurable mock for testing correction behavior.
// Set CorrectFunc to control the result; if nil, the input is echoed back.
type MockCorrector struct {
	CorrectFunc func(ctx context.Context, text string) (string, error)

	// CorrectCalls counts invocations for verification.
	CorrectCalls int
}

// NewMockCorrector creates a new mock with echo defaults.
func NewMockCorrector() *MockCorrector {
	return &MockCorrector{}
}

// Correct implements TextCorrector.
func (m *MockCorrector) Correct(ctx context.Context, text string) (string, error) {
	m.CorrectCalls++
	if m.CorrectFunc != nil {
		return m.CorrectFunc(ctx, text)
	}
	return text, nil
}

// Reset clears call tracking.
func (m *MockCorrector) Reset() {
	m.CorrectCalls = 0
}
