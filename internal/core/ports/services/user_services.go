package services

import (
	"context"

	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	"github.com/praxisbooks/asset_depreciation_app/internal/dto"
)

// UserSvcFacade manages the bookkeeper account and credential checks.
type UserSvcFacade interface {
	// CreateUser registers a new user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// Authenticate verifies a username/password pair and returns the user on
	// success.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}
