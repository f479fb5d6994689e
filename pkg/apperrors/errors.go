package apperrors

import "errors"

// Fatal error kinds abort the run before or during orchestration. Sampling
// and correction failures are recovered locally and never surface here.
var (
	ErrMissingDatabaseURI = errors.New("MONGODB_URI environment variable is not set")
	ErrMissingDatabase    = errors.New("mongodb database name is not configured")
	ErrMissingOutputDir   = errors.New("output directory is not configured")
)
