package service

import (
	"context"
	"strings"

	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/prompt"
)

// TranslationStyle selects the register of a translation.
type TranslationStyle string

const (
	StyleColloquial TranslationStyle = "colloquial"
	StyleFormal     TranslationStyle = "formal"
)

// translationTemperature keeps translations predictable.
const translationTemperature = 0.2

// languageNames maps source-language codes to the display names used in
// prompts.
var languageNames = map[string]string{
	"zh": "Chinese (中文)",
	"ko": "Korean (한국어)",
	"ur": "Urdu (اردو)",
	"hi": "Hindi (हिन्दी)",
	"uk": "Ukrainian (Українська)",
	"ru": "Russian (Русский)",
	"vi": "Vietnamese (Tiếng Việt)",
}

// languageName returns the display name for a language code, or fallback
// for unknown codes.
func languageName(code, fallback string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return fallback
}

// TranslationService translates learner text into Swedish.
type TranslationService struct {
	dispatcher *domain.Dispatcher
	prompts    *prompt.Manager
}

// NewTranslationService creates a translation service.
func NewTranslationService(dispatcher *domain.Dispatcher, prompts *prompt.Manager) *TranslationService {
	return &TranslationService{dispatcher: dispatcher, prompts: prompts}
}

// Translate renders text into Swedish in the requested register. The
// source language code selects the prompt's language name; unknown codes
// default to English.
func (s *TranslationService) Translate(ctx context.Context, text string, style TranslationStyle, sourceLang string) (string, error) {
	styleDesc := "colloquial (vardaglig)"
	if style == StyleFormal {
		styleDesc = "formal (formell)"
	}

	rendered, err := s.prompts.Render(prompt.NameTranslation, map[string]string{
		"Style":          styleDesc,
		"Text":           text,
		"TargetLanguage": languageName(sourceLang, "English"),
	})
	if err != nil {
		return "", err
	}

	result, err := s.dispatcher.Generate(ctx, &domain.GenerationRequest{
		Prompt: rendered,
		Params: &domain.GenerationParams{Temperature: translationTemperature},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Text), nil
}
