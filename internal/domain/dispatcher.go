package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tala-app/backend/internal/observability"
)

// Dispatcher orchestrates providers in a fixed priority order, masking
// individual provider failures behind a bounded fallback chain. A failed
// attempt moves immediately to the next provider; there is no retry within
// a single provider. Dispatchers hold no mutable state and are safe for
// concurrent use.
type Dispatcher struct {
	chain []Provider
}

// NewDispatcher creates a dispatcher over an ordered provider chain,
// primary first.
func NewDispatcher(chain ...Provider) (*Dispatcher, error) {
	if len(chain) == 0 {
		return nil, errors.New("provider chain cannot be empty")
	}
	for _, p := range chain {
		if p == nil {
			return nil, errors.New("provider chain cannot contain nil providers")
		}
	}
	return &Dispatcher{chain: chain}, nil
}

// Generate produces text for a prompt plus history. Providers are attempted
// strictly in chain order; if every provider fails the call fails with
// ErrGenerationFailed wrapping the last provider's error.
func (d *Dispatcher) Generate(ctx context.Context, req *GenerationRequest) (*GenerationResult, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	logger := observability.FromContext(ctx)
	start := time.Now()

	// Blank history messages are never transmitted, regardless of
	// provider.
	filtered := filterHistory(req.History)
	attempt := &GenerationRequest{
		Prompt:  req.Prompt,
		History: filtered,
		Params:  req.Params,
	}

	var lastErr error
	for i, provider := range d.chain {
		result, err := provider.Generate(ctx, attempt)
		if err == nil {
			result.Timing.Total = time.Since(start)
			logger.Info("response generated",
				observability.String("provider", provider.Name()),
				observability.Int("attempt", i+1),
				observability.Duration("api_call_time", result.Timing.APICall),
				observability.Duration("total_time", result.Timing.Total),
			)
			return result, nil
		}

		lastErr = err
		logger.Warn("provider attempt failed, trying next in chain",
			observability.String("provider", provider.Name()),
			observability.Int("attempt", i+1),
			observability.Error(err),
		)
	}

	logger.Error("provider chain exhausted", observability.Error(lastErr))
	return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, lastErr)
}

// filterHistory drops messages whose content is empty or whitespace-only.
func filterHistory(history []Message) []Message {
	filtered := make([]Message, 0, len(history))
	for _, msg := range history {
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}
		filtered = append(filtered, msg)
	}
	return filtered
}
