package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/prompt"
	"github.com/tala-app/backend/internal/service"
)

const sampleReview = `Great effort on your café conversation!

Strengths:
- Good use of polite phrases
- Clear ordering vocabulary

Areas for Improvement:
- Watch verb conjugation in past tense
- Try longer sentences

Score: 4 / 5`

func TestReviewService_Review(t *testing.T) {
	messages := []domain.Message{
		{Role: domain.RoleUser, Content: "Hej, en kaffe tack"},
		{Role: domain.RoleAssistant, Content: "Självklart! Något mer?"},
	}

	t.Run("should parse sections and score", func(t *testing.T) {
		provider := textProvider(sampleReview)
		svc := service.NewReviewService(newDispatcher(t, provider), prompt.NewManager())

		review, err := svc.Review(context.Background(), domain.LevelB1, "på ett café", messages)

		require.NoError(t, err)
		require.Equal(t, sampleReview, review.Review)
		require.Equal(t, []string{"Good use of polite phrases", "Clear ordering vocabulary"}, review.Strengths)
		require.Equal(t, []string{"Watch verb conjugation in past tense", "Try longer sentences"}, review.Improvements)
		require.Equal(t, 4, review.Score)
		require.Equal(t, 2, review.MessageCount)
	})

	t.Run("should default score to zero when missing", func(t *testing.T) {
		provider := textProvider("Strengths:\n- Fine\n\nAreas for Improvement:\n- More practice")
		svc := service.NewReviewService(newDispatcher(t, provider), prompt.NewManager())

		review, err := svc.Review(context.Background(), domain.LevelB1, "scenario", messages)

		require.NoError(t, err)
		require.Equal(t, 0, review.Score)
	})

	t.Run("should succeed on unstructured review text", func(t *testing.T) {
		provider := textProvider("You did well overall, keep practicing.")
		svc := service.NewReviewService(newDispatcher(t, provider), prompt.NewManager())

		review, err := svc.Review(context.Background(), domain.LevelB1, "scenario", messages)

		require.NoError(t, err)
		require.Empty(t, review.Strengths)
		require.Empty(t, review.Improvements)
		require.Equal(t, 0, review.Score)
	})

	t.Run("should include the formatted conversation in the prompt", func(t *testing.T) {
		provider := textProvider(sampleReview)
		svc := service.NewReviewService(newDispatcher(t, provider), prompt.NewManager())

		_, err := svc.Review(context.Background(), domain.LevelB1, "på ett café", messages)

		require.NoError(t, err)
		require.Contains(t, provider.lastSeen.Prompt, "Jag: Hej, en kaffe tack")
		require.Contains(t, provider.lastSeen.Prompt, "Du: Självklart! Något mer?")
	})
}

func TestFormatConversation(t *testing.T) {
	got := service.FormatConversation([]domain.Message{
		{Role: domain.RoleUser, Content: "Hej"},
		{Role: domain.RoleAssistant, Content: "Hej hej"},
	})
	require.Equal(t, "Jag: Hej\nDu: Hej hej", got)
}
