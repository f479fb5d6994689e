package inference

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/schemascope/schemascope/pkg/adapters/datasource"
	"github.com/schemascope/schemascope/pkg/models"
)

// Sampler builds collection-level schemas by drawing random document samples
// from a DocumentSource and merging the per-document field maps.
type Sampler struct {
	source datasource.DocumentSource
	logger *zap.Logger
}

// NewSampler creates a Sampler over the given source.
func NewSampler(source datasource.DocumentSource, logger *zap.Logger) *Sampler {
	return &Sampler{
		source: source,
		logger: logger,
	}
}

// CollectionFields samples up to sampleSize documents from the named
// collection and merges their field maps into one schema.
//
// Merge policy is last-write-wins: when two sampled documents disagree on a
// path's type, the later document decides. This is a known imprecision of
// statistical sampling, not a consensus vote.
//
// Retrieval failures and empty collections never fail the run: both yield an
// empty field map and a warning so the remaining collections still get
// processed.
func (s *Sampler) CollectionFields(ctx context.Context, collection string, sampleSize int) models.FieldMap {
	s.logger.Info("Analyzing collection",
		zap.String("collection", collection),
		zap.Int("sample_size", sampleSize))

	start := time.Now()
	docs, err := s.source.SampleDocuments(ctx, collection, sampleSize)
	if err != nil {
		s.logger.Warn("Sampling failed, treating collection as empty",
			zap.String("collection", collection),
			zap.Error(err))
		return models.FieldMap{}
	}

	fields := models.FieldMap{}
	for i, doc := range docs {
		for path, fieldType := range DocumentFields(doc, "") {
			fields[path] = fieldType
		}
		if (i+1)%10 == 0 {
			s.logger.Info("Sampling progress",
				zap.String("collection", collection),
				zap.Int("processed", i+1),
				zap.Int("requested", sampleSize))
		}
	}

	s.logger.Info("Completed collection analysis",
		zap.String("collection", collection),
		zap.Int("documents", len(docs)),
		zap.Int("unique_fields", len(fields)),
		zap.Duration("elapsed", time.Since(start)))
	return fields
}
