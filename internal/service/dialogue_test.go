package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/prompt"
	"github.com/tala-app/backend/internal/service"
)

const sampleDialogue = `Jag: Hej! En kaffe, tack.
Du: Hej! Ska det vara något mer?
Jag: En kanelbulle också.
Du: Det blir 45 kronor.

**Key Expressions:**
- En kaffe, tack - A coffee, please
- Ska det vara något mer? - Will there be anything else?`

func newDialogueService(provider domain.Provider, t *testing.T) *service.DialogueService {
	t.Helper()
	return service.NewDialogueService(
		newDispatcher(t, provider),
		prompt.NewManager(),
		service.NewDialogueCache(10, time.Minute),
	)
}

func TestDialogueService_Get(t *testing.T) {
	t.Run("should split dialogue and key phrases", func(t *testing.T) {
		provider := textProvider(sampleDialogue)
		svc := newDialogueService(provider, t)

		dialogue, err := svc.Get(context.Background(), domain.LevelA2, "på ett café")

		require.NoError(t, err)
		require.Contains(t, dialogue.Dialog, "En kanelbulle också")
		require.NotContains(t, dialogue.Dialog, "Key Expressions")
		require.Equal(t, []string{
			"En kaffe, tack - A coffee, please",
			"Ska det vara något mer? - Will there be anything else?",
		}, dialogue.KeyPhrases)
	})

	t.Run("should serve repeats from cache with zero generation time", func(t *testing.T) {
		provider := textProvider(sampleDialogue)
		svc := newDialogueService(provider, t)

		_, err := svc.Get(context.Background(), domain.LevelA2, "på ett café")
		require.NoError(t, err)

		again, err := svc.Get(context.Background(), domain.LevelA2, "på ett café")
		require.NoError(t, err)
		require.Equal(t, 1, provider.calls)
		require.Zero(t, again.GenerationTime)
		require.NotEmpty(t, again.Dialog)
		require.NotEmpty(t, again.KeyPhrases)
	})

	t.Run("should treat whitespace-padded situations as the same key", func(t *testing.T) {
		provider := textProvider(sampleDialogue)
		svc := newDialogueService(provider, t)

		_, err := svc.Get(context.Background(), domain.LevelA2, "på ett café")
		require.NoError(t, err)
		_, err = svc.Get(context.Background(), domain.LevelA2, "  på ett café \n")
		require.NoError(t, err)

		require.Equal(t, 1, provider.calls)
	})

	t.Run("should distinguish situations differing in inner whitespace", func(t *testing.T) {
		provider := textProvider(sampleDialogue)
		svc := newDialogueService(provider, t)

		_, err := svc.Get(context.Background(), domain.LevelA2, "på café")
		require.NoError(t, err)
		_, err = svc.Get(context.Background(), domain.LevelA2, "på  café")
		require.NoError(t, err)

		// Only surrounding whitespace is normalized, never inner spacing.
		require.Equal(t, 2, provider.calls)
	})

	t.Run("should distinguish levels in the cache key", func(t *testing.T) {
		provider := textProvider(sampleDialogue)
		svc := newDialogueService(provider, t)

		_, err := svc.Get(context.Background(), domain.LevelA1, "på ett café")
		require.NoError(t, err)
		_, err = svc.Get(context.Background(), domain.LevelB2, "på ett café")
		require.NoError(t, err)

		require.Equal(t, 2, provider.calls)
	})

	t.Run("should serve but not cache a dialogue without key phrases", func(t *testing.T) {
		provider := textProvider("Jag: Hej!\nDu: Hej hej!")
		svc := newDialogueService(provider, t)

		dialogue, err := svc.Get(context.Background(), domain.LevelA2, "hälsningar")
		require.NoError(t, err)
		require.Equal(t, "Jag: Hej!\nDu: Hej hej!", dialogue.Dialog)
		require.Empty(t, dialogue.KeyPhrases)

		_, err = svc.Get(context.Background(), domain.LevelA2, "hälsningar")
		require.NoError(t, err)
		require.Equal(t, 2, provider.calls)
	})

	t.Run("should surface generation failures", func(t *testing.T) {
		provider := errProvider(domain.ErrMissingCredential)
		svc := newDialogueService(provider, t)

		_, err := svc.Get(context.Background(), domain.LevelA2, "på ett café")
		require.ErrorIs(t, err, domain.ErrGenerationFailed)
	})
}
