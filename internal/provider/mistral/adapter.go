// Package mistral provides the primary generation provider, backed by the
// Mistral chat-completions API. The API is OpenAI-compatible, so the
// adapter drives it through the official OpenAI SDK with a custom base URL
// and handles conversion between domain types and SDK types.
package mistral

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/observability"
)

const providerName = "mistral"

// Provider implements the domain.Provider interface for Mistral.
type Provider struct {
	client openai.Client
	model  string
	hasKey bool
}

// NewProvider creates a new Mistral provider. A missing API key is not an
// error here: the credential check happens per attempt so that the
// dispatcher can fall back instead of the process failing to start.
func NewProvider(config Config) *Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	return &Provider{
		client: openai.NewClient(opts...),
		model:  config.Model,
		hasKey: config.APIKey != "",
	}
}

// Generate sends one chat-completion request and returns the generated text.
func (p *Provider) Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if !p.hasKey {
		return nil, domain.ErrMissingCredential
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling Mistral API", observability.String("model", p.model))

	params := p.toSDKParams(req)

	start := time.Now()
	resp, err := p.client.Chat.Completions.New(ctx, params)
	apiCall := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("mistral API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in mistral response", domain.ErrMalformedResponse)
	}

	logger.Debug("Mistral API call succeeded",
		observability.Duration("api_call_time", apiCall),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return &domain.GenerationResult{
		Text:   resp.Choices[0].Message.Content,
		Timing: domain.Timing{APICall: apiCall},
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// toSDKParams converts a domain request to SDK ChatCompletionNewParams.
// The prompt travels as the system message; the two generic roles map onto
// the chat-completion wire roles.
func (p *Provider) toSDKParams(req *domain.GenerationRequest) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+1)
	messages = append(messages, openai.SystemMessage(req.Prompt))

	for _, msg := range req.History {
		switch msg.Role {
		case domain.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	return openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(p.model),
		Messages:    messages,
		Temperature: openai.Float(req.Params.EffectiveTemperature()),
		MaxTokens:   openai.Int(int64(req.Params.EffectiveMaxOutputTokens())),
	}
}
