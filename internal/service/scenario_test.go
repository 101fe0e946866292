package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/prompt"
)

// countingProvider is safe to observe while the background pre-generation
// goroutine is still running.
type countingProvider struct {
	mu      sync.Mutex
	text    string
	err     error
	calls   int
	prompts []string
}

func (p *countingProvider) Generate(_ context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.prompts = append(p.prompts, req.Prompt)
	if p.err != nil {
		return nil, p.err
	}
	return &domain.GenerationResult{Text: p.text}, nil
}

func (p *countingProvider) Name() string { return "counting" }

func (p *countingProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func newScenarioFixture(t *testing.T, provider domain.Provider) *ScenarioService {
	t.Helper()
	dispatcher, err := domain.NewDispatcher(provider)
	require.NoError(t, err)

	prompts := prompt.NewManager()
	dialogues := NewDialogueService(dispatcher, prompts, NewDialogueCache(10, time.Minute))
	svc := NewScenarioService(dispatcher, prompts, dialogues)
	svc.preGenDelay = 0
	return svc
}

func TestScenarioService_Generate(t *testing.T) {
	generated := "På Arlanda är jag en nervös turist med stor väska. Du är en vänlig flygplatsarbetare."

	t.Run("should return the generated scenario", func(t *testing.T) {
		provider := &countingProvider{text: generated}
		svc := newScenarioFixture(t, provider)

		scenario := svc.Generate(context.Background(), domain.LevelA2, "")

		require.Equal(t, generated, scenario.Scenario)
		require.Equal(t, ScenarioTypeRandom, scenario.Type)
		require.Equal(t, domain.LevelA2, scenario.Level)
	})

	t.Run("should mark learner-supplied situations as custom", func(t *testing.T) {
		provider := &countingProvider{text: generated}
		svc := newScenarioFixture(t, provider)

		scenario := svc.Generate(context.Background(), domain.LevelB1, " på flygplatsen ")

		require.Equal(t, ScenarioTypeCustom, scenario.Type)
		require.Equal(t, "på flygplatsen", scenario.Situation)
	})

	t.Run("should fall back when generation fails", func(t *testing.T) {
		provider := &countingProvider{err: errors.New("all providers down")}
		svc := newScenarioFixture(t, provider)

		scenario := svc.Generate(context.Background(), domain.LevelA1, "")

		require.Equal(t, fallbackScenario, scenario.Scenario)
	})

	t.Run("should fall back on degenerate short responses", func(t *testing.T) {
		provider := &countingProvider{text: "Ok."}
		svc := newScenarioFixture(t, provider)

		scenario := svc.Generate(context.Background(), domain.LevelA1, "")

		require.Equal(t, fallbackScenario, scenario.Scenario)
	})

	t.Run("should pre-generate the example dialogue in the background", func(t *testing.T) {
		provider := &countingProvider{text: generated}
		svc := newScenarioFixture(t, provider)

		svc.Generate(context.Background(), domain.LevelA2, "")

		// One call for the scenario, one for the dialogue pre-generation.
		require.Eventually(t, func() bool {
			return provider.callCount() == 2
		}, 2*time.Second, 10*time.Millisecond)

		provider.mu.Lock()
		defer provider.mu.Unlock()
		require.True(t, strings.Contains(provider.prompts[1], generated))
	})
}
