package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"hrbridge/internal/domain/entity"
)

// Callback failures, all tagged so the handler can distinguish a provider
// denial from a malformed payload.
var (
	ErrProviderDenied  = errors.New("authentication provider returned an error")
	ErrMissingAuthData = errors.New("no authentication data found in callback")
)

// CallbackResult is the parsed outcome of a successful callback.
type CallbackResult struct {
	UserID string
	Patch  entity.ProfilePatch
}

// AuthFlowUsecase completes the redirect-based external login flow. The
// callback carries either an error marker or a URL-encoded JSON user
// payload; a valid payload is merged into the current session.
type AuthFlowUsecase interface {
	Complete(values url.Values) (*CallbackResult, error)
}

type authFlowUsecase struct {
	session SessionUsecase
	logger  *zap.Logger
}

func NewAuthFlowUsecase(session SessionUsecase, logger *zap.Logger) AuthFlowUsecase {
	return &authFlowUsecase{
		session: session,
		logger:  logger,
	}
}

func (u *authFlowUsecase) Complete(values url.Values) (*CallbackResult, error) {
	u.logger.Info("Completing external auth flow")

	if marker := values.Get("error"); marker != "" {
		u.logger.Warn("External auth flow denied", zap.String("error", marker))
		return nil, ErrProviderDenied
	}

	userParam := values.Get("user")
	if userParam == "" {
		return nil, ErrMissingAuthData
	}

	var identity struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(userParam), &identity); err != nil {
		return nil, fmt.Errorf("failed to parse authentication data: %w", err)
	}
	if identity.ID == "" {
		return nil, ErrMissingAuthData
	}

	var patch entity.ProfilePatch
	if err := json.Unmarshal([]byte(userParam), &patch); err != nil {
		return nil, fmt.Errorf("failed to parse authentication data: %w", err)
	}

	u.session.SetAuthData(identity.ID, patch)

	u.logger.Info("External auth flow completed", zap.String("user_id", identity.ID))
	return &CallbackResult{
		UserID: identity.ID,
		Patch:  patch,
	}, nil
}
