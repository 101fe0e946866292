package lemma_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tala-app/backend/internal/lemma"
)

func TestService_Lemmatize(t *testing.T) {
	svc := lemma.NewService()
	ctx := context.Background()

	t.Run("should return empty for blank input", func(t *testing.T) {
		require.Empty(t, svc.Lemmatize(ctx, "   ", lemma.LangSwedish))
	})

	t.Run("should lowercase the input", func(t *testing.T) {
		got := svc.Lemmatize(ctx, "HUND", lemma.LangSwedish)
		require.Equal(t, strings.ToLower(got), got)
	})

	t.Run("should return lowercased input for unknown languages", func(t *testing.T) {
		require.Equal(t, "hundar", svc.Lemmatize(ctx, " Hundar ", "fi"))
	})

	t.Run("should reduce english plurals", func(t *testing.T) {
		require.Equal(t, "dog", svc.Lemmatize(ctx, "dogs", lemma.LangEnglish))
	})

	t.Run("should keep single words unspaced and phrases spaced", func(t *testing.T) {
		single := svc.Lemmatize(ctx, "kanelbulle", lemma.LangSwedish)
		require.NotContains(t, single, " ")

		phrase := svc.Lemmatize(ctx, "the dogs", lemma.LangEnglish)
		require.Contains(t, phrase, " ")
	})
}
