package translate

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider implements Provider for the OpenAI API.
type OpenAIProvider struct {
	client openai.Client
	model  string
	name   string
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(apiKey, baseURL, model string) *OpenAIProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		model:  model,
		name:   ProviderOpenAI,
	}
}

// NewCompatibleProvider creates a provider for an OpenAI-compatible endpoint.
func NewCompatibleProvider(apiKey, baseURL, model string) *OpenAIProvider {
	p := NewOpenAIProvider(apiKey, baseURL, model)
	p.name = ProviderCompatible
	return p
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return p.name
}

// Translate renders text into the target language.
func (p *OpenAIProvider) Translate(ctx context.Context, text, targetLang string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(translatePrompt(targetLang)),
			openai.UserMessage(text),
		},
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
