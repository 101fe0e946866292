// Package search implements dictionary search: query normalization, lemma
// derivation, ranked pagination and the supplementary example-sentence
// lookup.
package search

import (
	"context"
	"strings"

	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/observability"
)

// Pagination bounds. Out-of-range requests are clamped, not rejected.
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
	exampleLimit    = 5
)

// Query is one search request.
type Query struct {
	Text     string
	Page     int
	PageSize int
}

// Result is one page of ranked dictionary matches. ExamplesFound is only
// populated on the first page.
type Result struct {
	Items         []domain.DictionaryEntry `json:"items"`
	TotalItems    int                      `json:"total_items"`
	TotalPages    int                      `json:"total_pages"`
	CurrentPage   int                      `json:"current_page"`
	ExamplesFound []domain.ExampleHit      `json:"examples_found"`
}

// Service coordinates lemma derivation and store queries for one search.
type Service struct {
	store domain.DictionaryStore
	lemma domain.Lemmatizer
}

// NewService creates a search service.
func NewService(store domain.DictionaryStore, lemma domain.Lemmatizer) *Service {
	return &Service{store: store, lemma: lemma}
}

// Search runs one dictionary search. A blank query returns an empty result
// without touching the store.
func (s *Service) Search(ctx context.Context, q Query) (*Result, error) {
	log := observability.FromContext(ctx)

	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	switch {
	case size < 1:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}

	literal := strings.ToLower(strings.TrimSpace(q.Text))
	if literal == "" {
		return &Result{
			Items:         []domain.DictionaryEntry{},
			ExamplesFound: []domain.ExampleHit{},
			CurrentPage:   1,
		}, nil
	}

	terms := domain.SearchTerms{
		Literal:      literal,
		SwedishLemma: s.lemma.Lemmatize(ctx, literal, "sv"),
		EnglishLemma: s.lemma.Lemmatize(ctx, literal, "en"),
	}

	total, err := s.store.CountMatches(ctx, terms)
	if err != nil {
		return nil, err
	}

	items, err := s.store.ListMatches(ctx, terms, size, (page-1)*size)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.DictionaryEntry{}
	}

	result := &Result{
		Items:         items,
		TotalItems:    total,
		TotalPages:    (total + size - 1) / size,
		CurrentPage:   page,
		ExamplesFound: []domain.ExampleHit{},
	}

	// Example sentences supplement the first page only.
	if page == 1 {
		hits, err := s.store.SearchExamples(ctx, literal, exampleLimit)
		if err != nil {
			return nil, err
		}
		if hits != nil {
			result.ExamplesFound = hits
		}
	}

	log.Debug("dictionary search",
		observability.String("query", literal),
		observability.Int("total", total),
		observability.Int("page", page))

	return result, nil
}
