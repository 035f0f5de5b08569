package translate

import (
	"context"
	"strings"

	"polyfaq/backend/internal/logger"
)

// Synthesizer produces a translation for a single piece of text. It never
// fails: any provider problem resolves to the degraded fallback, where the
// source text is returned unchanged. The boolean result reports whether a
// genuine translation was produced, for observability and tests only —
// callers must not treat a fallback differently at the API level.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, targetLang string) (string, bool)
}

type synthesizer struct {
	provider Provider
	limiter  *RateLimiter
}

// NewSynthesizer wraps a provider with the fallback policy. A nil provider
// is allowed and makes every call a fallback, so the service stays up when
// no provider is configured.
func NewSynthesizer(provider Provider, limiter *RateLimiter) Synthesizer {
	if limiter == nil {
		limiter = NewRateLimiter(DefaultRateLimit)
	}
	return &synthesizer{provider: provider, limiter: limiter}
}

func (s *synthesizer) Synthesize(ctx context.Context, text, targetLang string) (string, bool) {
	if s.provider == nil {
		logger.Warn("translation skipped, no provider configured", "module", "translate", "action", "synthesize", "resource", "provider", "result", "fallback", "lang", targetLang)
		return text, false
	}

	if err := s.limiter.Wait(ctx); err != nil {
		logger.Warn("translation rate limit wait failed", "module", "translate", "action", "synthesize", "resource", "provider", "result", "fallback", "lang", targetLang, "error", err)
		return text, false
	}

	out, err := s.provider.Translate(ctx, text, targetLang)
	if err != nil {
		logger.Warn("translation failed, returning source text", "module", "translate", "action", "synthesize", "resource", "provider", "result", "fallback", "provider_name", s.provider.Name(), "lang", targetLang, "error", err)
		return text, false
	}

	out = strings.TrimSpace(out)
	if out == "" {
		logger.Warn("translation empty, returning source text", "module", "translate", "action", "synthesize", "resource", "provider", "result", "fallback", "provider_name", s.provider.Name(), "lang", targetLang)
		return text, false
	}

	return out, true
}
