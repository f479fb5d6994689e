// Package mongodb implements datasource.DocumentSource over the official
// MongoDB driver.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/schemascope/schemascope/pkg/adapters/datasource"
)

// Source samples documents from a single MongoDB database.
type Source struct {
	client *mongo.Client
	db     *mongo.Database
}

// Compile-time interface check.
var _ datasource.DocumentSource = (*Source)(nil)

// Connect establishes a client for the given connection string and database
// name. The caller owns the returned Source and must Close it.
func Connect(ctx context.Context, uri, database string) (*Source, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	return &Source{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Ping verifies the deployment is reachable.
func (s *Source) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}
	return nil
}

// ListCollections returns the collection names of the configured database.
func (s *Source) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// SampleDocuments draws a random sample via the $sample aggregation stage.
func (s *Source) SampleDocuments(ctx context.Context, collection string, size int) ([]map[string]any, error) {
	samplingPipeline := bson.D{
		{Key: "$sample", Value: bson.M{"size": size}},
	}
	cursor, err := s.db.Collection(collection).Aggregate(ctx, mongo.Pipeline{samplingPipeline})
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []map[string]any
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode sampled document from %s: %w", collection, err)
		}
		docs = append(docs, map[string]any(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate sample cursor for %s: %w", collection, err)
	}
	return docs, nil
}

// Close disconnects the underlying client.
func (s *Source) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
