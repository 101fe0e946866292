package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tala-app/backend/internal/domain"
)

// WordbookService manages a user's saved words. Every mutation checks
// ownership.
type WordbookService struct {
	store domain.WordbookStore
}

// NewWordbookService creates a wordbook service.
func NewWordbookService(store domain.WordbookStore) *WordbookService {
	return &WordbookService{store: store}
}

// List returns the user's saved words, newest first.
func (s *WordbookService) List(ctx context.Context, userID int64) ([]domain.WordbookEntry, error) {
	return s.store.ListByUser(ctx, userID)
}

// Add saves a word with its definition for the user.
func (s *WordbookService) Add(ctx context.Context, userID int64, word, definition string) (*domain.WordbookEntry, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, fmt.Errorf("word is required")
	}
	return s.store.Add(ctx, userID, word, definition)
}

// Remove deletes an entry. Entries owned by another user surface as
// domain.ErrForbidden, missing entries as domain.ErrNotFound.
func (s *WordbookService) Remove(ctx context.Context, userID, entryID int64) error {
	entry, err := s.store.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return domain.ErrForbidden
	}
	return s.store.Delete(ctx, entryID)
}
