package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"hrbridge/internal/domain/entity"
	"hrbridge/internal/domain/repository"
	"hrbridge/internal/infrastructure/credential"
)

// SessionSnapshot is a read-only view of the session state. Exactly one of
// {Profile != nil, Authenticated == false} holds at any time.
type SessionSnapshot struct {
	Loading       bool                `json:"loading"`
	Authenticated bool                `json:"isAuthenticated"`
	Profile       *entity.UserProfile `json:"profile"`
}

// SessionUsecase holds the authenticated user's identity and gates access
// to protected routes. It is a process-wide singleton created at startup
// and never torn down.
type SessionUsecase interface {
	// Bootstrap resolves the initial session state against the backend.
	// Every failure, network errors included, means "not logged in" and is
	// never surfaced as an error.
	Bootstrap(ctx context.Context)
	// Login adopts a profile already obtained from a prior request.
	Login(profile *entity.UserProfile)
	// LoginWithPassword obtains a profile via credentials, then logs in.
	LoginWithPassword(ctx context.Context, email, password string) (*entity.UserProfile, error)
	// Register creates an account, then logs in with the new profile.
	Register(ctx context.Context, email, password, firstName, lastName string) (*entity.UserProfile, error)
	// CheckAuthStatus re-validates the session against the backend and
	// returns the resulting authentication state.
	CheckAuthStatus(ctx context.Context) bool
	// SetAuthData merges partial profile fields iff userID matches the
	// currently held profile; a no-op otherwise.
	SetAuthData(userID string, patch entity.ProfilePatch)
	// Logout invalidates the server-side session best-effort, then
	// unconditionally drops the local session.
	Logout(ctx context.Context)
	// Snapshot returns the current session state.
	Snapshot() SessionSnapshot
}

type sessionUsecase struct {
	mu            sync.RWMutex
	loading       bool
	authenticated bool
	profile       *entity.UserProfile

	userRepo repository.UserRepository
	creds    credential.Store
	logger   *zap.Logger
}

func NewSessionUsecase(userRepo repository.UserRepository, creds credential.Store, logger *zap.Logger) SessionUsecase {
	return &sessionUsecase{
		loading:  true,
		userRepo: userRepo,
		creds:    creds,
		logger:   logger,
	}
}

func (u *sessionUsecase) Bootstrap(ctx context.Context) {
	u.logger.Info("Resolving session state")

	profile, err := u.userRepo.Me(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()

	u.loading = false
	if err != nil {
		// Not an error from the user's point of view: there simply is no
		// session yet.
		u.logger.Info("No active session", zap.Error(err))
		u.authenticated = false
		u.profile = nil
		return
	}

	u.authenticated = true
	u.profile = profile
	u.logger.Info("Session restored",
		zap.String("user_id", profile.ID),
		zap.String("email", profile.Email),
	)
}

func (u *sessionUsecase) Login(profile *entity.UserProfile) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.authenticated = true
	u.profile = profile
	u.logger.Info("Logged in",
		zap.String("user_id", profile.ID),
		zap.String("email", profile.Email),
	)
}

func (u *sessionUsecase) LoginWithPassword(ctx context.Context, email, password string) (*entity.UserProfile, error) {
	profile, err := u.userRepo.Login(ctx, email, password)
	if err != nil {
		u.logger.Warn("Login failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	u.Login(profile)
	return profile, nil
}

func (u *sessionUsecase) Register(ctx context.Context, email, password, firstName, lastName string) (*entity.UserProfile, error) {
	profile, err := u.userRepo.Register(ctx, email, password, firstName, lastName)
	if err != nil {
		u.logger.Warn("Registration failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	u.Login(profile)
	return profile, nil
}

func (u *sessionUsecase) CheckAuthStatus(ctx context.Context) bool {
	u.setLoading(true)
	defer u.setLoading(false)

	authenticated, err := u.userRepo.AuthStatus(ctx)
	if err != nil || !authenticated {
		if err != nil {
			u.logger.Warn("Auth status check failed", zap.Error(err))
		}
		u.dropSession()
		return false
	}

	profile, err := u.userRepo.Me(ctx)
	if err != nil {
		u.logger.Warn("Failed to fetch profile after auth check", zap.Error(err))
		u.dropSession()
		return false
	}

	u.mu.Lock()
	u.authenticated = true
	u.profile = profile
	u.mu.Unlock()

	return true
}

func (u *sessionUsecase) SetAuthData(userID string, patch entity.ProfilePatch) {
	u.mu.Lock()
	defer u.mu.Unlock()

	// Guards against applying stale callback data after a logout or an
	// account switch.
	if u.profile == nil || u.profile.ID != userID {
		u.logger.Debug("Ignoring profile patch for non-current user",
			zap.String("user_id", userID),
		)
		return
	}

	updated := patch.Apply(*u.profile)
	u.profile = &updated
}

func (u *sessionUsecase) Logout(ctx context.Context) {
	if err := u.userRepo.Logout(ctx); err != nil {
		// Best effort: the local session drops regardless.
		u.logger.Warn("Server-side logout failed", zap.Error(err))
	}

	if err := u.creds.Clear(ctx); err != nil {
		u.logger.Warn("Failed to clear stored credential", zap.Error(err))
	}

	u.dropSession()
	u.logger.Info("Logged out")
}

func (u *sessionUsecase) Snapshot() SessionSnapshot {
	u.mu.RLock()
	defer u.mu.RUnlock()

	snap := SessionSnapshot{
		Loading:       u.loading,
		Authenticated: u.authenticated,
	}
	if u.profile != nil {
		profileCopy := *u.profile
		snap.Profile = &profileCopy
	}
	return snap
}

func (u *sessionUsecase) setLoading(loading bool) {
	u.mu.Lock()
	u.loading = loading
	u.mu.Unlock()
}

func (u *sessionUsecase) dropSession() {
	u.mu.Lock()
	u.authenticated = false
	u.profile = nil
	u.mu.Unlock()
}
