// Package datasource abstracts the document database the schema is inferred
// from. Implementations live in per-engine subpackages.
package datasource

import "context"

// DocumentSource provides access to a document database for schema sampling.
// Each implementation owns its connection and must be closed when done.
type DocumentSource interface {
	// Ping verifies the database is reachable with valid credentials.
	Ping(ctx context.Context) error

	// ListCollections returns the collection names of the configured database.
	ListCollections(ctx context.Context) ([]string, error)

	// SampleDocuments draws a random sample of up to size documents from the
	// named collection. The result may be smaller than size when the
	// collection holds fewer documents; order is not deterministic.
	SampleDocuments(ctx context.Context, collection string, size int) ([]map[string]any, error)

	// Close releases the database connection.
	Close(ctx context.Context) error
}
