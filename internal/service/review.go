package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/prompt"
)

var (
	bulletRe = regexp.MustCompile(`-\s*(.*)`)
	scoreRe  = regexp.MustCompile(`Score:\s*(\d+)\s*/\s*5`)
)

// Review is a structured performance review of one practice conversation.
type Review struct {
	Review       string           `json:"review"`
	Strengths    []string         `json:"strengths"`
	Improvements []string         `json:"improvements"`
	Score        int              `json:"score"`
	Level        domain.CEFRLevel `json:"level"`
	MessageCount int              `json:"message_count"`
}

// ReviewService generates coaching feedback for a finished conversation.
type ReviewService struct {
	dispatcher *domain.Dispatcher
	prompts    *prompt.Manager
}

// NewReviewService creates a review service.
func NewReviewService(dispatcher *domain.Dispatcher, prompts *prompt.Manager) *ReviewService {
	return &ReviewService{dispatcher: dispatcher, prompts: prompts}
}

// Review generates and parses a performance review. A review the parser
// cannot fully recognize still succeeds; unparsed sections are empty and a
// missing score reads as 0.
func (s *ReviewService) Review(ctx context.Context, level domain.CEFRLevel, scenario string, messages []domain.Message) (*Review, error) {
	rendered, err := s.prompts.Render(prompt.NameReview, map[string]string{
		"CEFR_Level":   string(level),
		"context":      scenario,
		"conversation": FormatConversation(messages),
	})
	if err != nil {
		return nil, err
	}

	result, err := s.dispatcher.Generate(ctx, &domain.GenerationRequest{Prompt: rendered})
	if err != nil {
		return nil, err
	}

	strengths, improvements, score := parseReview(result.Text)
	return &Review{
		Review:       result.Text,
		Strengths:    strengths,
		Improvements: improvements,
		Score:        score,
		Level:        level,
		MessageCount: len(messages),
	}, nil
}

// FormatConversation renders messages as "Jag:" (learner) and "Du:"
// (assistant) lines for prompt use and display.
func FormatConversation(messages []domain.Message) string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		speaker := "Du"
		if m.Role == domain.RoleUser {
			speaker = "Jag"
		}
		lines = append(lines, speaker+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}

// parseReview extracts the bullet lists and score from the structured
// review text.
func parseReview(text string) (strengths, improvements []string, score int) {
	strengths = bullets(before(afterLast(text, "Strengths:"), "Areas for Improvement:"))
	improvements = bullets(before(afterLast(text, "Areas for Improvement:"), "Score:"))

	if m := scoreRe.FindStringSubmatch(text); m != nil {
		score, _ = strconv.Atoi(m[1])
	}
	return strengths, improvements, score
}

func bullets(section string) []string {
	var out []string
	for _, m := range bulletRe.FindAllStringSubmatch(section, -1) {
		out = append(out, strings.TrimSpace(m[1]))
	}
	return out
}

func afterLast(s, sep string) string {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[i+len(sep):]
	}
	return s
}

func before(s, sep string) string {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i]
	}
	return s
}
