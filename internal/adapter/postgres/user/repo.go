// Package user implements the user store using PostgreSQL.
package user

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tala-app/backend/internal/adapter/postgres"
	"github.com/tala-app/backend/internal/domain"
)

// Repo provides user account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user. Returns domain.ErrAlreadyExists when the
// username is taken.
func (r *Repo) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Insert("users").
		Columns("username", "password_hash").
		Values(username, passwordHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user create")
	}

	u := domain.User{Username: username, PasswordHash: passwordHash}
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&u.ID); err != nil {
		return nil, postgres.MapError(err, "user create")
	}
	return &u, nil
}

// GetByUsername returns a user by username. Returns domain.ErrNotFound
// when no such user exists.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select("id", "username", "password_hash").
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user get")
	}

	var u domain.User
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		return nil, postgres.MapError(err, "user get")
	}
	return &u, nil
}
