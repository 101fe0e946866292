// Package service implements the conversation-practice workflows on top of
// the provider dispatcher: scenario generation, example dialogues,
// performance reviews, translation, word reports, and the account and
// wordbook flows.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/observability"
	"github.com/tala-app/backend/internal/prompt"
)

// ScenarioType distinguishes learner-supplied situations from randomly
// generated ones.
type ScenarioType string

const (
	ScenarioTypeRandom ScenarioType = "random"
	ScenarioTypeCustom ScenarioType = "custom"
)

// fallbackScenario is returned whenever generation fails or produces a
// degenerate response. Scenario generation never surfaces an error to the
// learner.
const fallbackScenario = "På ett café i Stockholm. Jag är en barista och du är en kund. Du vill beställa en kaffe och en kanelbulle."

// Responses at or below this length are treated as degenerate.
const minScenarioLength = 10

// Scenario is one generated practice scenario.
type Scenario struct {
	Scenario  string           `json:"scenario"`
	Type      ScenarioType     `json:"type"`
	Level     domain.CEFRLevel `json:"level"`
	Situation string           `json:"situation,omitempty"`
}

// ScenarioService generates practice scenarios and pre-warms the example
// dialogue cache in the background.
type ScenarioService struct {
	dispatcher *domain.Dispatcher
	prompts    *prompt.Manager
	dialogues  *DialogueService

	// preGenDelay is the pause before background dialogue pre-generation.
	preGenDelay time.Duration
}

// NewScenarioService creates a scenario service.
func NewScenarioService(dispatcher *domain.Dispatcher, prompts *prompt.Manager, dialogues *DialogueService) *ScenarioService {
	return &ScenarioService{
		dispatcher:  dispatcher,
		prompts:     prompts,
		dialogues:   dialogues,
		preGenDelay: time.Second,
	}
}

// Generate produces a practice scenario for the level. When situation is
// blank a random scenario is generated instead. Generation failures and
// degenerate responses fall back to a fixed scenario; this method never
// fails.
func (s *ScenarioService) Generate(ctx context.Context, level domain.CEFRLevel, situation string) *Scenario {
	logger := observability.FromContext(ctx)

	situation = strings.TrimSpace(situation)
	scenarioType := ScenarioTypeRandom
	name := prompt.NameRandomContext
	vars := map[string]string{"CEFR_Level": string(level)}
	if situation != "" {
		scenarioType = ScenarioTypeCustom
		name = prompt.NameContextPrompt
		vars["Situation"] = situation
	}

	var text string
	if rendered, err := s.prompts.Render(name, vars); err != nil {
		logger.Error("scenario prompt render failed", observability.Error(err))
	} else {
		result, err := s.dispatcher.Generate(ctx, &domain.GenerationRequest{Prompt: rendered})
		if err != nil {
			logger.Error("scenario generation failed, using fallback", observability.Error(err))
		} else if trimmed := strings.TrimSpace(result.Text); len(trimmed) > minScenarioLength {
			text = trimmed
		}
	}
	if text == "" {
		logger.Warn("scenario empty or degenerate, using fallback")
		text = fallbackScenario
	}

	// Pre-generate the example dialogue for this scenario so the learner's
	// likely next request is a cache hit. The request context ends with the
	// response, so detach from it.
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		time.Sleep(s.preGenDelay)
		if _, err := s.dialogues.Get(bgCtx, level, text); err != nil {
			observability.FromContext(bgCtx).Warn("dialogue pre-generation failed",
				observability.Error(err))
		}
	}()

	return &Scenario{
		Scenario:  text,
		Type:      scenarioType,
		Level:     level,
		Situation: situation,
	}
}
