package services

import (
	"context"

	"github.com/finflow/family_finance_app/internal/core/domain"
	"github.com/finflow/family_finance_app/internal/dto"
)

// UserSvcFacade defines operations for managing users
type UserSvcFacade interface {
	// RegisterUser creates a new local user with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user by their unique identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by their email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindOrCreateGoogleUser resolves a user from validated Google ID token
	// claims, creating the user on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, email string, name string) (*domain.User, error)
}
