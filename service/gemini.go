package service

import (
	"context"
	"strings"
	"time"

	"lexsim-backend/config"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiGenerator calls the Gemini API through the official client
type GeminiGenerator struct {
	client     *genai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	logger     *zap.Logger
}

// NewGeminiGenerator creates a Gemini-backed generator from the settings.
// The API key is required.
func NewGeminiGenerator(ctx context.Context, cfg config.Settings, logger *zap.Logger) (*GeminiGenerator, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, err
	}

	return &GeminiGenerator{
		client:     client,
		model:      cfg.ModelName,
		timeout:    cfg.RequestTimeout,
		maxRetries: cfg.MaxRetries,
		logger:     logger.With(zap.String("component", "gemini_generator")),
	}, nil
}

// Close releases the underlying API client
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// Generate requests a completion, retrying transient failures with the
// shared backoff policy.
func (g *GeminiGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	return generateWithRetry(ctx, g.logger, g.maxRetries, g.timeout, initialBackoff, func(ctx context.Context) (string, error) {
		resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return "", ErrEmptyModelOutput
		}

		var b strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
		if b.Len() == 0 {
			return "", ErrEmptyModelOutput
		}
		return b.String(), nil
	})
}
