// Package gemini provides the fallback generation provider, backed by the
// Google Generative Language REST API. The wire format differs from the
// chat-completions shape: conversation turns travel as contents with text
// parts, and a policy refusal is reported through promptFeedback rather
// than a transport error.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/observability"
)

const (
	providerName = "gemini"

	// Gemini has no system role; the prompt is sent as a leading user
	// turn and acknowledged with a fixed model turn so the first real
	// history message keeps its own role.
	promptAck = "Ok, jag förstår. Låt oss börja."

	defaultTopP = 0.95
)

// Provider implements the domain.Provider interface for Gemini.
type Provider struct {
	client *Client
	hasKey bool
}

// NewProvider creates a new Gemini provider. As with the primary provider,
// a missing API key fails the attempt rather than construction.
func NewProvider(config Config) *Provider {
	return &Provider{
		client: NewClient(config),
		hasKey: config.APIKey != "",
	}
}

// Generate sends one generateContent request and returns the generated text.
func (p *Provider) Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if !p.hasKey {
		return nil, domain.ErrMissingCredential
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling Gemini API")

	wireReq := p.toWireRequest(req)

	start := time.Now()
	resp, err := p.client.generateContent(ctx, wireReq)
	apiCall := time.Since(start)
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrContentBlocked, resp.PromptFeedback.BlockReason)
		}
		return nil, fmt.Errorf("%w: no candidates in gemini response", domain.ErrMalformedResponse)
	}

	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: candidate has no parts", domain.ErrMalformedResponse)
	}

	logger.Debug("Gemini API call succeeded", observability.Duration("api_call_time", apiCall))

	return &domain.GenerationResult{
		Text:   parts[0].Text,
		Timing: domain.Timing{APICall: apiCall},
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// toWireRequest converts a domain request to the generateContent shape.
// The assistant role maps to "model" on this wire.
func (p *Provider) toWireRequest(req *domain.GenerationRequest) generateContentRequest {
	contents := make([]content, 0, len(req.History)+2)
	if req.Prompt != "" {
		contents = append(contents,
			content{Role: "user", Parts: []part{{Text: req.Prompt}}},
			content{Role: "model", Parts: []part{{Text: promptAck}}},
		)
	}

	for _, msg := range req.History {
		role := "user"
		if msg.Role == domain.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: msg.Content}}})
	}

	return generateContentRequest{
		Contents: contents,
		GenerationConfig: generationConfig{
			Temperature:     req.Params.EffectiveTemperature(),
			TopP:            defaultTopP,
			MaxOutputTokens: req.Params.EffectiveMaxOutputTokens(),
		},
	}
}
