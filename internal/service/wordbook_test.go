package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/service"
)

// memWordbookStore is an in-memory WordbookStore.
type memWordbookStore struct {
	entries map[int64]*domain.WordbookEntry
	nextID  int64
}

func newMemWordbookStore() *memWordbookStore {
	return &memWordbookStore{entries: make(map[int64]*domain.WordbookEntry)}
}

func (s *memWordbookStore) ListByUser(_ context.Context, userID int64) ([]domain.WordbookEntry, error) {
	var out []domain.WordbookEntry
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *memWordbookStore) Add(_ context.Context, userID int64, word, definition string) (*domain.WordbookEntry, error) {
	s.nextID++
	e := &domain.WordbookEntry{ID: s.nextID, UserID: userID, Word: word, Definition: definition, CreatedAt: time.Now()}
	s.entries[e.ID] = e
	return e, nil
}

func (s *memWordbookStore) GetByID(_ context.Context, id int64) (*domain.WordbookEntry, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (s *memWordbookStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

func TestWordbookService(t *testing.T) {
	ctx := context.Background()

	t.Run("should add and list entries", func(t *testing.T) {
		svc := service.NewWordbookService(newMemWordbookStore())

		entry, err := svc.Add(ctx, 1, "kanelbulle", "cinnamon bun")
		require.NoError(t, err)
		require.Equal(t, "kanelbulle", entry.Word)

		entries, err := svc.List(ctx, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		other, err := svc.List(ctx, 2)
		require.NoError(t, err)
		require.Empty(t, other)
	})

	t.Run("should reject blank words", func(t *testing.T) {
		svc := service.NewWordbookService(newMemWordbookStore())

		_, err := svc.Add(ctx, 1, "   ", "definition")
		require.Error(t, err)
	})

	t.Run("should only remove the owner's entries", func(t *testing.T) {
		store := newMemWordbookStore()
		svc := service.NewWordbookService(store)

		entry, err := svc.Add(ctx, 1, "fika", "coffee break")
		require.NoError(t, err)

		err = svc.Remove(ctx, 2, entry.ID)
		require.ErrorIs(t, err, domain.ErrForbidden)

		err = svc.Remove(ctx, 1, entry.ID)
		require.NoError(t, err)

		err = svc.Remove(ctx, 1, entry.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
