package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
	"go.uber.org/zap"

	"github.com/schemascope/schemascope/pkg/prompts"
	"github.com/schemascope/schemascope/pkg/retry"
)

// AnthropicCorrector submits diagram text to the Anthropic Messages API for
// cleanup.
type AnthropicCorrector struct {
	client    *anthropic.Client
	model     string
	maxTokens int
	timeout   time.Duration
	logger    *zap.Logger
}

// AnthropicConfig holds configuration for creating an AnthropicCorrector.
type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// NewAnthropicCorrector creates a corrector backed by the Anthropic API.
func NewAnthropicCorrector(cfg AnthropicConfig, logger *zap.Logger) (*AnthropicCorrector, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AnthropicCorrector{
		client:    anthropic.NewClient(cfg.APIKey),
		model:     cfg.Model,
		maxTokens: maxTokens,
		timeout:   timeout,
		logger:    logger.Named("llm"),
	}, nil
}

// Correct implements TextCorrector.
func (c *AnthropicCorrector) Correct(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := prompts.BuildDiagramCorrectionPrompt(text)

	c.logger.Debug("Correction request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)))
	start := time.Now()

	resp, err := retry.DoWithResult(ctx, nil, func() (anthropic.MessagesResponse, error) {
		return c.client.CreateMessages(ctx, anthropic.MessagesRequest{
			Model:     anthropic.Model(c.model),
			System:    prompts.BuildDiagramCorrectionSystemMessage(),
			MaxTokens: c.maxTokens,
			Messages: []anthropic.Message{
				{Role: anthropic.RoleUser, Content: []anthropic.MessageContent{
					{Type: anthropic.MessagesContentTypeText, Text: &prompt},
				}},
			},
		})
	})
	if err != nil {
		c.logger.Error("Correction request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", fmt.Errorf("create messages: %w", err)
	}

	responseText := ""
	for _, block := range resp.Content {
		if block.Type == anthropic.MessagesContentTypeText && block.Text != nil {
			responseText = *block.Text
			break
		}
	}
	if responseText == "" {
		return "", fmt.Errorf("no text content in response")
	}

	c.logger.Info("Correction request completed",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_len", len(responseText)))

	return ExtractDiagram(responseText), nil
}

// ExtractDiagram pulls the erDiagram section out of a model response,
// dropping any prose before the marker and anything after a code fence.
func ExtractDiagram(response string) string {
	var lines []string
	inDiagram := false
	for _, raw := range strings.Split(response, "\n") {
		line := strings.TrimSpace(raw)
		if line == "erDiagram" {
			inDiagram = true
			lines = append(lines, line)
			continue
		}
		if !inDiagram {
			continue
		}
		if strings.HasPrefix(line, "```") {
			inDiagram = false
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
