package credential

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hrbridge/internal/config"
	"hrbridge/internal/infrastructure/redis"
)

const credentialKey = "hrbridge:session:credential"

// ErrNotFound is returned when no credential has been persisted.
var ErrNotFound = errors.New("no session credential stored")

// Store persists the backend session credential (cookie value or bearer
// token) so an established session survives agent restarts.
type Store interface {
	// Save persists the credential with the configured TTL.
	Save(ctx context.Context, value string) error
	// Load returns the persisted credential, or ErrNotFound.
	Load(ctx context.Context) (string, error)
	// Clear removes the persisted credential.
	Clear(ctx context.Context) error
}

type redisStore struct {
	redis  *redis.RedisClient
	ttl    time.Duration
	logger *zap.Logger
}

func NewStore(cfg *config.Config, redisClient *redis.RedisClient, logger *zap.Logger) Store {
	return &redisStore{
		redis:  redisClient,
		ttl:    time.Duration(cfg.Session.CredentialTTLDays) * 24 * time.Hour,
		logger: logger,
	}
}

func (s *redisStore) Save(ctx context.Context, value string) error {
	if err := s.redis.Set(ctx, credentialKey, value, s.ttl); err != nil {
		return fmt.Errorf("failed to store session credential: %w", err)
	}
	s.logger.Debug("Session credential stored", zap.Duration("ttl", s.ttl))
	return nil
}

func (s *redisStore) Load(ctx context.Context) (string, error) {
	value, err := s.redis.Get(ctx, credentialKey)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load session credential: %w", err)
	}
	if value == "" {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	if err := s.redis.Del(ctx, credentialKey); err != nil {
		return fmt.Errorf("failed to clear session credential: %w", err)
	}
	s.logger.Debug("Session credential cleared")
	return nil
}
