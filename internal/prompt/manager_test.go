package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tala-app/backend/internal/prompt"
)

func TestManager_Render(t *testing.T) {
	m := prompt.NewManager()

	t.Run("should substitute every occurrence of a parameter", func(t *testing.T) {
		rendered, err := m.Render(prompt.NameRandomContext, map[string]string{
			"CEFR_Level": "A2",
		})

		require.NoError(t, err)
		require.Contains(t, rendered, "adapted to A2 level")
		require.NotContains(t, rendered, "{CEFR_Level}")
	})

	t.Run("should fail on unknown templates", func(t *testing.T) {
		_, err := m.Render("no_such_template", nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "not found")
	})

	t.Run("should fail on missing parameters", func(t *testing.T) {
		_, err := m.Render(prompt.NameContextPrompt, map[string]string{
			"CEFR_Level": "A2",
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "Situation")
	})

	t.Run("should fail on unexpected parameters", func(t *testing.T) {
		_, err := m.Render(prompt.NameRandomContext, map[string]string{
			"CEFR_Level": "A2",
			"Situation":  "på ett café",
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "unexpected")
	})

	t.Run("should keep literal braces in the word analysis template", func(t *testing.T) {
		rendered, err := m.Render(prompt.NameWordAnalysis, map[string]string{
			"SwedishWord":    "äta",
			"WordClass":      "verb",
			"TargetLanguage": "English",
		})

		require.NoError(t, err)
		require.Contains(t, rendered, `"definition"`)
		require.Contains(t, rendered, `the Swedish word "äta"`)
		require.NotContains(t, rendered, "{SwedishWord}")
	})
}

func TestManager_Names(t *testing.T) {
	names := prompt.NewManager().Names()

	require.Equal(t, []string{
		prompt.NameChatPrompt,
		prompt.NameContextPrompt,
		prompt.NameExampleDialogue,
		prompt.NameRandomContext,
		prompt.NameReview,
		prompt.NameTranslation,
		prompt.NameWordAnalysis,
	}, names)
}
