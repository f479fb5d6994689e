package llm

import "context"

// NopCorrector returns its input unchanged. Injected when no correction
// service is configured so callers never have to branch on "is a client
// available".
type NopCorrector struct{}

// NewNopCorrector creates the pass-through corrector.
func NewNopCorrector() *NopCorrector {
	return &NopCorrector{}
}

// Correct implements TextCorrector.
func (n *NopCorrector) Correct(_ context.Context, text string) (string, error) {
	return text, nil
}
