package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiter is a sliding-window request counter keyed by client
// identity. It is owned by whoever constructs it and injected into the
// routes that need it; there is no package-level state.
type RateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string][]time.Time
	now    func() time.Time
	logger *zap.Logger
}

// RateLimiterOption is a functional option for RateLimiter
type RateLimiterOption func(*RateLimiter)

// WithClock overrides the time source, used by tests
func WithClock(now func() time.Time) RateLimiterOption {
	return func(l *RateLimiter) {
		l.now = now
	}
}

// WithRateLimiterLogger sets the limiter logger
func WithRateLimiterLogger(logger *zap.Logger) RateLimiterOption {
	return func(l *RateLimiter) {
		l.logger = logger.With(zap.String("component", "rate_limiter"))
	}
}

// NewRateLimiter creates a limiter allowing limit requests per client
// within the given window
func NewRateLimiter(limit int, window time.Duration, opts ...RateLimiterOption) *RateLimiter {
	l := &RateLimiter{
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records one request for the client and reports whether it fits
// inside the window
func (l *RateLimiter) Allow(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	bucket := l.hits[clientID]
	kept := bucket[:0]
	for _, hit := range bucket {
		if hit.After(cutoff) {
			kept = append(kept, hit)
		}
	}

	if len(kept) >= l.limit {
		l.hits[clientID] = kept
		return false
	}

	l.hits[clientID] = append(kept, now)
	return true
}

// Middleware rejects requests over the limit with 429
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if !l.Allow(clientIP) {
			l.logger.Warn("rate limit exceeded", zap.String("client_ip", clientIP))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "RATE_LIMITED",
					"message": "Límite de peticiones excedido. Intente nuevamente más tarde.",
				},
			})
			return
		}
		c.Next()
	}
}
