// Package translate wraps external translation providers and the degraded
// fallback policy around them.
package translate

import (
	"context"
	"errors"
	"fmt"
)

// Provider defines the interface for translation backends.
type Provider interface {
	// Translate renders text into the target language (a 2-letter code).
	Translate(ctx context.Context, text, targetLang string) (string, error)
	// Name returns the provider name.
	Name() string
}

// Config holds the configuration for a translation provider.
type Config struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string // optional for openai/anthropic, required for compatible
	Model    string
	QPS      int
}

// ProviderType constants
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
	ErrEmptyCompletion = errors.New("provider returned an empty completion")
)

// NewProvider creates a translation provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, ErrInvalidProvider
	}
}

// translatePrompt returns the system prompt for FAQ text translation.
func translatePrompt(language string) string {
	return fmt.Sprintf(`You are an expert translator. Translate the FAQ text into the target language.

<context>
<target_language>%s</target_language>
</context>

<instructions>
1. You MUST translate into the language specified in <target_language>. Responses in other languages are invalid
2. Output ONLY the translated text, nothing else
3. Preserve the original meaning and tone
4. Keep proper nouns and brand names unchanged
5. NEVER translate URLs
6. NO explanations, NO notes, NO markdown formatting
7. NO leading or trailing newlines
</instructions>`, language)
}
