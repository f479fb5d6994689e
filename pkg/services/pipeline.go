// Package services contains the schema generation orchestration.
package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/schemascope/schemascope/pkg/adapters/datasource"
	"github.com/schemascope/schemascope/pkg/detect"
	"github.com/schemascope/schemascope/pkg/diagram"
	"github.com/schemascope/schemascope/pkg/inference"
	"github.com/schemascope/schemascope/pkg/models"
)

// artifactBaseName is the fixed artifact file name; the configured format is
// appended as its extension. Other tools depend on this exact name.
const artifactBaseName = "unified_database_schema"

// PipelineConfig carries the run settings the orchestrator needs.
type PipelineConfig struct {
	SampleSize    int
	IncludeFields []string
	ExcludeFields []string
	OutputDir     string
	OutputFormat  string
}

// SchemaPipeline sequences sampling, relationship detection, rendering and
// normalization across all collections of one database, then writes the final
// artifact.
//
// Collections are processed one at a time; a failure sampling one collection
// degrades the diagram instead of aborting the run, while configuration,
// connection and write failures are fatal.
type SchemaPipeline struct {
	source     datasource.DocumentSource
	sampler    *inference.Sampler
	strategy   detect.Strategy
	normalizer *diagram.Normalizer
	cfg        PipelineConfig
	logger     *zap.Logger
}

// NewSchemaPipeline wires up the orchestrator.
func NewSchemaPipeline(
	source datasource.DocumentSource,
	strategy detect.Strategy,
	normalizer *diagram.Normalizer,
	cfg PipelineConfig,
	logger *zap.Logger,
) *SchemaPipeline {
	return &SchemaPipeline{
		source:     source,
		sampler:    inference.NewSampler(source, logger),
		strategy:   strategy,
		normalizer: normalizer,
		cfg:        cfg,
		logger:     logger,
	}
}

// Run executes the full pipeline and returns the path of the written
// artifact.
func (p *SchemaPipeline) Run(ctx context.Context) (string, error) {
	start := time.Now()
	p.logger.Info("Starting schema generation")

	collections, err := p.source.ListCollections(ctx)
	if err != nil {
		return "", fmt.Errorf("list collections: %w", err)
	}

	schema := models.UnifiedSchema{}
	for i, name := range collections {
		p.logger.Info("Processing collection",
			zap.String("collection", name),
			zap.Int("index", i+1),
			zap.Int("total", len(collections)))

		fields := p.sampler.CollectionFields(ctx, name, p.cfg.SampleSize)
		if len(fields) == 0 {
			p.logger.Warn("No fields found in collection, skipping",
				zap.String("collection", name))
			continue
		}

		fields = inference.FilterFields(fields, p.cfg.IncludeFields, p.cfg.ExcludeFields)
		schema.Collections = append(schema.Collections, models.CollectionSchema{
			Name:   name,
			Fields: fields,
		})
		p.logger.Info("Completed collection",
			zap.String("collection", name),
			zap.Int("fields", len(fields)))
	}

	schema.Relationships = p.strategy.Detect(schema.Collections)

	p.logger.Info("Generating ER diagram")
	rendered := diagram.Render(schema)
	final := p.normalizer.Normalize(ctx, rendered)

	path, err := p.writeArtifact(final)
	if err != nil {
		return "", err
	}

	p.logger.Info("Schema generation completed",
		zap.String("artifact", path),
		zap.Duration("elapsed", time.Since(start)))
	return path, nil
}

func (p *SchemaPipeline) writeArtifact(content string) (string, error) {
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", p.cfg.OutputDir, err)
	}
	path := filepath.Join(p.cfg.OutputDir,
		fmt.Sprintf("%s.%s", artifactBaseName, p.cfg.OutputFormat))

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", path, err)
	}
	return path, nil
}
