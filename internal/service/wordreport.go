package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/tala-app/backend/internal/cache"
	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/observability"
	"github.com/tala-app/backend/internal/prompt"
)

// Structured output settings. Low temperature keeps the JSON stable.
const (
	reportTemperature     = 0.1
	reportMaxOutputTokens = 1024
)

// jsonFenceRe strips the markdown code fence some models wrap JSON in.
var jsonFenceRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// WordReportService generates structured learning reports for single
// Swedish words, memoized per (word, class, language).
type WordReportService struct {
	dispatcher *domain.Dispatcher
	prompts    *prompt.Manager
	cache      *cache.TTL[domain.WordReport]
}

// NewWordReportService creates a word report service backed by the given
// cache.
func NewWordReportService(dispatcher *domain.Dispatcher, prompts *prompt.Manager, c *cache.TTL[domain.WordReport]) *WordReportService {
	return &WordReportService{dispatcher: dispatcher, prompts: prompts, cache: c}
}

// NewWordReportCache creates the word report memoization cache.
func NewWordReportCache(capacity int, ttl time.Duration) *cache.TTL[domain.WordReport] {
	return cache.NewTTL[domain.WordReport](capacity, ttl)
}

func reportKey(word, wordClass, lang string) string {
	return fmt.Sprintf("%s|%s|%s", word, wordClass, lang)
}

// Report generates a learning report for word in targetLang. An empty
// wordClass asks the model to determine the part of speech itself. A
// response that does not decode as the expected JSON fails with
// domain.ErrInvalidFormat; malformed output is never cached.
func (s *WordReportService) Report(ctx context.Context, word, wordClass, targetLang string) (*domain.WordReport, error) {
	logger := observability.FromContext(ctx)

	key := reportKey(word, wordClass, targetLang)
	if hit, ok := s.cache.Get(key); ok {
		logger.Info("word report cache hit", observability.String("word", word))
		return &hit, nil
	}
	logger.Info("word report cache miss", observability.String("word", word))

	if wordClass == "" {
		wordClass = "unknown"
	}

	rendered, err := s.prompts.Render(prompt.NameWordAnalysis, map[string]string{
		"SwedishWord":    word,
		"WordClass":      wordClass,
		"TargetLanguage": languageName(targetLang, capitalize(targetLang)),
	})
	if err != nil {
		return nil, err
	}

	result, err := s.dispatcher.Generate(ctx, &domain.GenerationRequest{
		Prompt: rendered,
		Params: &domain.GenerationParams{
			Temperature:     reportTemperature,
			MaxOutputTokens: reportMaxOutputTokens,
		},
	})
	if err != nil {
		return nil, err
	}

	clean := strings.TrimSpace(jsonFenceRe.ReplaceAllString(result.Text, "$1"))

	var report domain.WordReport
	if err := json.Unmarshal([]byte(clean), &report); err != nil {
		logger.Error("word report is not valid JSON",
			observability.String("word", word),
			observability.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}

	s.cache.Set(key, report)
	return &report, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
