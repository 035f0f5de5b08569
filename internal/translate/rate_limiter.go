package translate

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the default QPS limit for provider calls.
const DefaultRateLimit = 10

// RateLimiter bounds the pressure the service puts on the translation
// provider.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a new rate limiter with the given QPS.
func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(qps), qps), // burst = qps
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
