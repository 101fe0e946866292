package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tala-app/backend/internal/cache"
	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/observability"
	"github.com/tala-app/backend/internal/prompt"
)

// keyExpressionsRe marks the start of the key-phrase section the model is
// asked to append after the dialogue.
var keyExpressionsRe = regexp.MustCompile(`(?is)\*\*Key Expressions:\*\*`)

// Dialogue is one example dialogue with its extracted key phrases.
type Dialogue struct {
	Dialog         string           `json:"dialog"`
	KeyPhrases     []string         `json:"key_phrases"`
	Level          domain.CEFRLevel `json:"level"`
	GenerationTime time.Duration    `json:"generation_time"`
}

// CachedDialogue is the memoized subset of a Dialogue. Timing is per
// request and never cached.
type CachedDialogue struct {
	Dialog     string
	KeyPhrases []string
}

// DialogueService generates example dialogues, memoized per
// (level, situation).
type DialogueService struct {
	dispatcher *domain.Dispatcher
	prompts    *prompt.Manager
	cache      *cache.TTL[CachedDialogue]
}

// NewDialogueService creates a dialogue service backed by the given cache.
func NewDialogueService(dispatcher *domain.Dispatcher, prompts *prompt.Manager, c *cache.TTL[CachedDialogue]) *DialogueService {
	return &DialogueService{dispatcher: dispatcher, prompts: prompts, cache: c}
}

// NewDialogueCache creates the dialogue memoization cache.
func NewDialogueCache(capacity int, ttl time.Duration) *cache.TTL[CachedDialogue] {
	return cache.NewTTL[CachedDialogue](capacity, ttl)
}

// dialogueKey builds the cache key. Only surrounding whitespace is
// normalized; two situations differing in inner spacing are distinct
// entries.
func dialogueKey(level domain.CEFRLevel, situation string) string {
	return fmt.Sprintf("%s-%s", level, strings.TrimSpace(situation))
}

// Get returns the example dialogue for (level, situation), generating and
// caching it on a miss. Cache hits report a zero generation time.
func (s *DialogueService) Get(ctx context.Context, level domain.CEFRLevel, situation string) (*Dialogue, error) {
	logger := observability.FromContext(ctx)

	key := dialogueKey(level, situation)
	if hit, ok := s.cache.Get(key); ok {
		logger.Info("dialogue cache hit", observability.String("key", key))
		return &Dialogue{
			Dialog:     hit.Dialog,
			KeyPhrases: hit.KeyPhrases,
			Level:      level,
		}, nil
	}
	logger.Info("dialogue cache miss", observability.String("key", key))

	rendered, err := s.prompts.Render(prompt.NameExampleDialogue, map[string]string{
		"CEFR_Level": string(level),
		"Context":    strings.TrimSpace(situation),
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.dispatcher.Generate(ctx, &domain.GenerationRequest{Prompt: rendered})
	if err != nil {
		return nil, err
	}

	dialog, phrases := splitKeyExpressions(result.Text)

	// Partial results are served but never memoized.
	if dialog != "" && len(phrases) > 0 {
		s.cache.Set(key, CachedDialogue{Dialog: dialog, KeyPhrases: phrases})
	}

	return &Dialogue{
		Dialog:         dialog,
		KeyPhrases:     phrases,
		Level:          level,
		GenerationTime: time.Since(start),
	}, nil
}

// splitKeyExpressions separates the dialogue body from the trailing key
// phrase list. Without a marker the whole text is the dialogue.
func splitKeyExpressions(raw string) (dialog string, phrases []string) {
	dialog = raw
	loc := keyExpressionsRe.FindStringIndex(raw)
	if loc == nil {
		return strings.TrimSpace(dialog), nil
	}

	dialog = strings.TrimSpace(raw[:loc[0]])
	for _, line := range strings.Split(raw[loc[1]:], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		phrases = append(phrases, strings.TrimLeft(line, "- "))
	}
	return dialog, phrases
}
