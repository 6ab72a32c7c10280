package repository

import (
	"context"

	"hrbridge/internal/domain/entity"
)

// UserRepository talks to the backend's user/session endpoints.
type UserRepository interface {
	// Login obtains a profile with email/password credentials.
	Login(ctx context.Context, email, password string) (*entity.UserProfile, error)
	// Register creates an account and obtains the new profile.
	Register(ctx context.Context, email, password, firstName, lastName string) (*entity.UserProfile, error)
	// Me returns the profile of the current session.
	Me(ctx context.Context) (*entity.UserProfile, error)
	// AuthStatus reports whether the backend considers the session valid.
	AuthStatus(ctx context.Context) (bool, error)
	// Logout invalidates the server-side session.
	Logout(ctx context.Context) error
}
