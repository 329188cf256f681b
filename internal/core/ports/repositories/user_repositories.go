package repositories

import (
	"context"

	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
)

// UserRepository defines persistence operations for the bookkeeper account.
type UserRepository interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
