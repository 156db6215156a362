package service

import (
	"context"
	"time"

	"lexsim-backend/config"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"
)

// OpenRouterGenerator calls an OpenAI-compatible chat completions gateway.
// OpenRouter is the default deployment target, but any compatible base URL
// works.
type OpenRouterGenerator struct {
	client     openai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	logger     *zap.Logger
}

// NewOpenRouterGenerator creates an OpenRouter-backed generator from the
// settings. The API key is required.
func NewOpenRouterGenerator(cfg config.Settings, logger *zap.Logger) (*OpenRouterGenerator, error) {
	if cfg.OpenRouterAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.OpenRouterAPIKey),
		option.WithBaseURL(cfg.OpenRouterBaseURL),
	)

	return &OpenRouterGenerator{
		client:     client,
		model:      cfg.ModelName,
		timeout:    cfg.RequestTimeout,
		maxRetries: cfg.MaxRetries,
		logger:     logger.With(zap.String("component", "openrouter_generator")),
	}, nil
}

// Generate requests a completion, retrying transient failures with the
// shared backoff policy.
func (g *OpenRouterGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	}

	return generateWithRetry(ctx, g.logger, g.maxRetries, g.timeout, initialBackoff, func(ctx context.Context) (string, error) {
		resp, err := g.client.Chat.Completions.New(ctx, params)
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", ErrEmptyModelOutput
		}
		return resp.Choices[0].Message.Content, nil
	})
}
