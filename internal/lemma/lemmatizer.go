// Package lemma normalizes words and phrases into their dictionary base
// form. It is consumed by the search service to build lemma predicates.
package lemma

import (
	"context"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/aaaton/golem/v4/dicts/sv"
	"golang.org/x/sync/semaphore"

	"github.com/tala-app/backend/internal/observability"
)

// Supported language codes.
const (
	LangSwedish = "sv"
	LangEnglish = "en"
)

// defaultWorkerSlots bounds concurrent lemmatization so CPU-bound lookups
// cannot starve I/O-bound request handling.
const defaultWorkerSlots = 2

// Service lemmatizes Swedish and English text using embedded language
// packs. When a language pack fails to load the service degrades to
// returning the lowercased input unchanged.
type Service struct {
	swedish *golem.Lemmatizer
	english *golem.Lemmatizer
	slots   *semaphore.Weighted
}

// NewService loads the language packs. Load failures are logged and leave
// the corresponding language in degraded mode; they never fail startup.
func NewService() *Service {
	logger := observability.FromContext(context.Background())

	svLem, err := golem.New(sv.New())
	if err != nil {
		logger.Warn("swedish lemmatizer unavailable, falling back to literal matching",
			observability.Error(err))
		svLem = nil
	}

	enLem, err := golem.New(en.New())
	if err != nil {
		logger.Warn("english lemmatizer unavailable, falling back to literal matching",
			observability.Error(err))
		enLem = nil
	}

	return &Service{
		swedish: svLem,
		english: enLem,
		slots:   semaphore.NewWeighted(defaultWorkerSlots),
	}
}

// Lemmatize returns the dictionary base form of text for the given
// language. Compound single words stay joined; multi-word phrases keep
// their spaces. Unknown languages and degraded mode return the lowercased
// input.
func (s *Service) Lemmatize(ctx context.Context, text string, lang string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	lowered := strings.ToLower(trimmed)

	var lem *golem.Lemmatizer
	switch lang {
	case LangSwedish:
		lem = s.swedish
	case LangEnglish:
		lem = s.english
	}
	if lem == nil {
		return lowered
	}

	if err := s.slots.Acquire(ctx, 1); err != nil {
		return lowered
	}
	defer s.slots.Release(1)

	tokens := strings.Fields(lowered)
	lemmas := make([]string, 0, len(tokens))
	for _, token := range tokens {
		lemmas = append(lemmas, lem.Lemma(token))
	}

	// A single word may be a compound that tokenizes oddly; never
	// introduce spaces the input did not have.
	if !strings.Contains(lowered, " ") {
		return strings.Join(lemmas, "")
	}
	return strings.Join(lemmas, " ")
}
