package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hrbridge/internal/domain/entity"
	"hrbridge/internal/domain/repository"
	"hrbridge/internal/infrastructure/httpclient"
)

type userRepository struct {
	client httpclient.APIClient
	logger *zap.Logger
}

func NewUserRepository(client httpclient.APIClient, logger *zap.Logger) repository.UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) Login(ctx context.Context, email, password string) (*entity.UserProfile, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var profile entity.UserProfile
	if err := r.client.Post(ctx, "/api/users/login", body, &profile); err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	return &profile, nil
}

func (r *userRepository) Register(ctx context.Context, email, password, firstName, lastName string) (*entity.UserProfile, error) {
	body := map[string]string{
		"email":     email,
		"password":  password,
		"firstName": firstName,
		"lastName":  lastName,
	}

	var profile entity.UserProfile
	if err := r.client.Post(ctx, "/api/users/register", body, &profile); err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	return &profile, nil
}

func (r *userRepository) Me(ctx context.Context) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := r.client.Get(ctx, "/api/users/me", &profile); err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	return &profile, nil
}

func (r *userRepository) AuthStatus(ctx context.Context) (bool, error) {
	var status entity.AuthStatusResponse
	if err := r.client.Get(ctx, "/api/users/auth-status", &status); err != nil {
		return false, fmt.Errorf("failed to check auth status: %w", err)
	}

	return status.Authenticated, nil
}

func (r *userRepository) Logout(ctx context.Context) error {
	if err := r.client.Post(ctx, "/api/users/logout", map[string]string{}, nil); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}

	return nil
}
