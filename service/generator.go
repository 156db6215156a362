package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"lexsim-backend/config"

	"github.com/openai/openai-go"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
)

// Generator produces raw model output for a system/user prompt pair.
// Implementations own provider-specific transport, retries and timeouts;
// callers only see the final text or a hard failure.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

var (
	ErrMissingAPIKey    = errors.New("provider API key not set")
	ErrUnknownProvider  = errors.New("unknown generation provider")
	ErrEmptyModelOutput = errors.New("provider returned no candidates")
)

const initialBackoff = time.Second

// NewGenerator creates the generator selected by the settings
func NewGenerator(ctx context.Context, cfg config.Settings, logger *zap.Logger) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderOpenRouter:
		return NewOpenRouterGenerator(cfg, logger)
	case config.ProviderGemini:
		return NewGeminiGenerator(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}

// generateWithRetry runs call with a fixed attempt budget and exponential
// backoff between attempts. Each attempt gets its own timeout; permanent
// provider errors (bad request, bad credentials) abort immediately.
func generateWithRetry(
	ctx context.Context,
	logger *zap.Logger,
	maxRetries int,
	timeout time.Duration,
	backoff time.Duration,
	call func(ctx context.Context) (string, error),
) (string, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		text, err := call(attemptCtx)
		cancel()
		if err == nil {
			return text, nil
		}
		lastErr = err

		if isPermanent(err) {
			return "", err
		}
		logger.Warn("generation attempt failed",
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	return "", fmt.Errorf("generation failed after %d attempts: %w", maxRetries, lastErr)
}

// isPermanent reports whether retrying cannot help: malformed requests and
// rejected credentials fail the same way every time. Rate limiting and
// transient transport errors stay retryable.
func isPermanent(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnauthorized
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code == http.StatusBadRequest || gErr.Code == http.StatusUnauthorized
	}
	return errors.Is(err, context.Canceled)
}
