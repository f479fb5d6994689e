package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/schemascope/schemascope/pkg/adapters/datasource/mongodb"
	"github.com/schemascope/schemascope/pkg/config"
	"github.com/schemascope/schemascope/pkg/detect"
	"github.com/schemascope/schemascope/pkg/diagram"
	"github.com/schemascope/schemascope/pkg/llm"
	"github.com/schemascope/schemascope/pkg/logging"
	"github.com/schemascope/schemascope/pkg/services"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Schema generation completed successfully!")
}

func run() error {
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync()

	logger = logger.With(zap.String("run_id", uuid.NewString()))
	logger.Info("Configuration loaded",
		zap.String("version", Version),
		zap.String("uri", logging.SanitizeConnectionString(cfg.MongoDB.URI)),
		zap.String("database", cfg.MongoDB.Database),
		zap.String("output_dir", cfg.Output.Directory),
		zap.Int("sample_size", cfg.Schema.SampleSize),
		zap.Bool("correction_enabled", cfg.CorrectionEnabled()))

	ctx := context.Background()

	source, err := mongodb.Connect(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database)
	if err != nil {
		return err
	}
	defer source.Close(ctx)

	if err := source.Ping(ctx); err != nil {
		return fmt.Errorf("mongodb unreachable: %s", logging.SanitizeError(err))
	}
	logger.Info("Connected to MongoDB")

	var corrector llm.TextCorrector
	if cfg.CorrectionEnabled() {
		corrector, err = llm.NewAnthropicCorrector(llm.AnthropicConfig{
			APIKey:    cfg.Anthropic.APIKey,
			Model:     cfg.Anthropic.Model,
			MaxTokens: cfg.Anthropic.MaxTokens,
			Timeout:   cfg.Anthropic.RequestTimeout,
		}, logger)
		if err != nil {
			return fmt.Errorf("init correction client: %w", err)
		}
		logger.Info("Diagram correction enabled", zap.String("model", cfg.Anthropic.Model))
	} else {
		corrector = llm.NewNopCorrector()
		logger.Info("Diagram correction disabled, no API key configured")
	}

	pipeline := services.NewSchemaPipeline(
		source,
		detect.NewNamingConvention(logger),
		diagram.NewNormalizer(corrector, logger),
		services.PipelineConfig{
			SampleSize:    cfg.Schema.SampleSize,
			IncludeFields: cfg.Schema.IncludeFields,
			ExcludeFields: cfg.Schema.ExcludeFields,
			OutputDir:     cfg.Output.Directory,
			OutputFormat:  cfg.Output.Format,
		},
		logger,
	)

	artifact, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("ER diagram saved", zap.String("path", artifact))
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	logLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = zap.NewAtomicLevelAt(logLevel)
	return logConfig.Build()
}
