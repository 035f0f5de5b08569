package translate

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 1024

// AnthropicProvider implements Provider for the Anthropic API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// NewAnthropicProvider creates a new Anthropic provider.
func NewAnthropicProvider(apiKey, baseURL, model string) *AnthropicProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &AnthropicProvider{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

// Name returns the provider name.
func (p *AnthropicProvider) Name() string {
	return ProviderAnthropic
}

// Translate renders text into the target language.
func (p *AnthropicProvider) Translate(ctx context.Context, text, targetLang string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: anthropicMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: translatePrompt(targetLang)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	}

	// Explicitly disable thinking (API defaults to enabled for some models)
	disabled := anthropic.NewThinkingConfigDisabledParam()
	params.Thinking = anthropic.ThinkingConfigParamUnion{
		OfDisabled: &disabled,
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	for _, block := range resp.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			if v.Text == "" {
				return "", ErrEmptyCompletion
			}
			return v.Text, nil
		}
	}
	return "", ErrEmptyCompletion
}

// Verify AnthropicProvider implements Provider
var _ Provider = (*AnthropicProvider)(nil)
