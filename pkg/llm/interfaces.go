// Package llm provides the text-correction capability used to repair rendered
// diagram text.
package llm

import "context"

// TextCorrector rewrites draft diagram text into cleaned-up diagram text.
// Implementations must treat failures as recoverable: callers fall back to the
// uncorrected input on any error, so an error here never aborts a run.
// Use this interface for dependency injection to enable mocking in tests.
type TextCorrector interface {
	// Correct submits the text for cleanup and returns the corrected version.
	Correct(ctx context.Context, text string) (string, error)
}

// Ensure implementations satisfy TextCorrector at compile time.
var (
	_ TextCorrector = (*AnthropicCorrector)(nil)
	_ TextCorrector = (*NopCorrector)(nil)
	_ TextCorrector = (*MockCorrector)(nil)
)
