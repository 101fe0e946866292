// Package wordbook implements the per-user saved-word store using
// PostgreSQL.
package wordbook

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tala-app/backend/internal/adapter/postgres"
	"github.com/tala-app/backend/internal/domain"
)

// Repo provides wordbook persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new wordbook repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByUser returns the user's saved words, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]domain.WordbookEntry, error) {
	query, args, err := postgres.Builder.
		Select("id", "user_id", "word", "definition", "created_at").
		From("wordbook_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "wordbook list")
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "wordbook list")
	}
	defer rows.Close()

	var entries []domain.WordbookEntry
	for rows.Next() {
		var e domain.WordbookEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Word, &e.Definition, &e.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "wordbook list")
		}
		entries = append(entries, e)
	}
	return entries, postgres.MapError(rows.Err(), "wordbook list")
}

// Add saves a word for the user and returns the persisted entry.
func (r *Repo) Add(ctx context.Context, userID int64, word, definition string) (*domain.WordbookEntry, error) {
	now := time.Now().UTC()
	query, args, err := postgres.Builder.
		Insert("wordbook_entries").
		Columns("user_id", "word", "definition", "created_at").
		Values(userID, word, definition, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "wordbook add")
	}

	e := domain.WordbookEntry{UserID: userID, Word: word, Definition: definition, CreatedAt: now}
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&e.ID); err != nil {
		return nil, postgres.MapError(err, "wordbook add")
	}
	return &e, nil
}

// GetByID returns a single entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.WordbookEntry, error) {
	query, args, err := postgres.Builder.
		Select("id", "user_id", "word", "definition", "created_at").
		From("wordbook_entries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "wordbook get")
	}

	var e domain.WordbookEntry
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&e.ID, &e.UserID, &e.Word, &e.Definition, &e.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "wordbook get")
	}
	return &e, nil
}

// Delete removes an entry. Missing rows are reported as domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder.
		Delete("wordbook_entries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "wordbook delete")
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "wordbook delete")
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "wordbook delete")
	}
	return nil
}
