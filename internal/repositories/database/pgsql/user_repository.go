package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/praxisbooks/asset_depreciation_app/internal/apperrors"
	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	portsrepo "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/repositories"
)

// PgxUserRepository persists users through a pgx connection pool.
type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new repository for user data.
func NewUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{pool: pool}
}

// Ensure PgxUserRepository implements the port.
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// SaveUser inserts a new user row.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, username, name, password_hash, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: username %s already exists", apperrors.ErrDuplicate, user.Username)
		}
		return fmt.Errorf("failed to save user %s: %w", user.UserID, err)
	}
	return nil
}

// FindUserByID retrieves a user by their ID, excluding soft-deleted rows.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, name, password_hash, created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	return r.findUser(ctx, query, userID)
}

// FindUserByUsername retrieves a user by their login name, excluding
// soft-deleted rows.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, name, password_hash, created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM users
		WHERE username = $1 AND deleted_at IS NULL;
	`
	return r.findUser(ctx, query, username)
}

func (r *PgxUserRepository) findUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var (
		user      domain.User
		deletedAt sql.NullTime
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.UserID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.LastUpdatedAt,
		&user.LastUpdatedBy,
		&deletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		user.DeletedAt = &t
	}
	return &user, nil
}
