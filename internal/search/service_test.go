package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/search"
)

// stubStore records the store calls one search produces.
type stubStore struct {
	total    int
	entries  []domain.DictionaryEntry
	examples []domain.ExampleHit

	countCalls   int
	listCalls    int
	exampleCalls int

	lastTerms  domain.SearchTerms
	lastLimit  int
	lastOffset int
}

func (s *stubStore) CountMatches(_ context.Context, terms domain.SearchTerms) (int, error) {
	s.countCalls++
	s.lastTerms = terms
	return s.total, nil
}

func (s *stubStore) ListMatches(_ context.Context, terms domain.SearchTerms, limit, offset int) ([]domain.DictionaryEntry, error) {
	s.listCalls++
	s.lastTerms = terms
	s.lastLimit = limit
	s.lastOffset = offset
	return s.entries, nil
}

func (s *stubStore) SearchExamples(_ context.Context, _ string, _ int) ([]domain.ExampleHit, error) {
	s.exampleCalls++
	return s.examples, nil
}

// suffixLemmatizer appends the language code so tests can see which lemma
// went where.
type suffixLemmatizer struct{}

func (suffixLemmatizer) Lemmatize(_ context.Context, text, lang string) string {
	return text + "+" + lang
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("should skip the store entirely for blank queries", func(t *testing.T) {
		store := &stubStore{}
		svc := search.NewService(store, suffixLemmatizer{})

		result, err := svc.Search(ctx, search.Query{Text: "   \t ", Page: 7})

		require.NoError(t, err)
		require.NotNil(t, result.Items)
		require.Empty(t, result.Items)
		require.NotNil(t, result.ExamplesFound)
		require.Empty(t, result.ExamplesFound)
		require.Equal(t, 1, result.CurrentPage)
		require.Zero(t, result.TotalItems)
		require.Zero(t, store.countCalls)
		require.Zero(t, store.listCalls)
		require.Zero(t, store.exampleCalls)
	})

	t.Run("should normalize the query and derive both lemmas", func(t *testing.T) {
		store := &stubStore{}
		svc := search.NewService(store, suffixLemmatizer{})

		_, err := svc.Search(ctx, search.Query{Text: "  Hundar "})

		require.NoError(t, err)
		require.Equal(t, "hundar", store.lastTerms.Literal)
		require.Equal(t, "hundar+sv", store.lastTerms.SwedishLemma)
		require.Equal(t, "hundar+en", store.lastTerms.EnglishLemma)
	})

	t.Run("should compute pagination totals", func(t *testing.T) {
		store := &stubStore{total: 21}
		svc := search.NewService(store, suffixLemmatizer{})

		result, err := svc.Search(ctx, search.Query{Text: "hund", Page: 2, PageSize: 10})

		require.NoError(t, err)
		require.Equal(t, 21, result.TotalItems)
		require.Equal(t, 3, result.TotalPages)
		require.Equal(t, 2, result.CurrentPage)
		require.Equal(t, 10, store.lastLimit)
		require.Equal(t, 10, store.lastOffset)
	})

	t.Run("should clamp page and page size", func(t *testing.T) {
		store := &stubStore{}
		svc := search.NewService(store, suffixLemmatizer{})

		result, err := svc.Search(ctx, search.Query{Text: "hund", Page: -3, PageSize: 500})
		require.NoError(t, err)
		require.Equal(t, 1, result.CurrentPage)
		require.Equal(t, search.MaxPageSize, store.lastLimit)
		require.Equal(t, 0, store.lastOffset)

		_, err = svc.Search(ctx, search.Query{Text: "hund"})
		require.NoError(t, err)
		require.Equal(t, search.DefaultPageSize, store.lastLimit)
	})

	t.Run("should fetch example sentences only on the first page", func(t *testing.T) {
		store := &stubStore{
			total:    20,
			examples: []domain.ExampleHit{{SwedishSentence: "Hunden sover.", ParentWord: "hund"}},
		}
		svc := search.NewService(store, suffixLemmatizer{})

		first, err := svc.Search(ctx, search.Query{Text: "hund", Page: 1})
		require.NoError(t, err)
		require.Len(t, first.ExamplesFound, 1)
		require.Equal(t, 1, store.exampleCalls)

		second, err := svc.Search(ctx, search.Query{Text: "hund", Page: 2})
		require.NoError(t, err)
		require.NotNil(t, second.ExamplesFound)
		require.Empty(t, second.ExamplesFound)
		require.Equal(t, 1, store.exampleCalls)
	})
}
