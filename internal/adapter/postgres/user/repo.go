// Package user implements the app-user repository using PostgreSQL.
package user

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/localehub/catalog-backend/internal/adapter/postgres"
	"github.com/localehub/catalog-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = "id, email, password_hash, role, created_at"

// Create inserts a new user.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUserRow(querier.QueryRow(ctx,
		`INSERT INTO app_users (email, password_hash, role)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		u.Email, u.PasswordHash, u.Role,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	return &created, nil
}

// GetByEmail returns a user by normalized email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUserRow(querier.QueryRow(ctx,
		`SELECT `+userColumns+` FROM app_users WHERE email = $1`, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return &u, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUserRow(querier.QueryRow(ctx,
		`SELECT `+userColumns+` FROM app_users WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &u, nil
}

func scanUserRow(row pgx.Row) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
