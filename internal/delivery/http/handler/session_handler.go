package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"hrbridge/internal/domain/entity"
	"hrbridge/internal/usecase"
)

type SessionHandler struct {
	session usecase.SessionUsecase
	logger  *zap.Logger
}

func NewSessionHandler(session usecase.SessionUsecase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		session: session,
		logger:  logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Snapshot returns the current session state.
func (h *SessionHandler) Snapshot(c *fiber.Ctx) error {
	return c.JSON(entity.NewSuccessResponse(h.session.Snapshot(), "Session state"))
}

// Login authenticates against the backend with email/password.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Invalid request body"),
		)
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Email and password are required"),
		)
	}

	profile, err := h.session.LoginWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Login failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(profile, "Logged in successfully"))
}

// Register creates a backend account and logs in with it.
func (h *SessionHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Invalid request body"),
		)
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Email and password are required"),
		)
	}

	profile, err := h.session.Register(ctx, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		h.logger.Error("Registration failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(
		entity.NewSuccessResponse(profile, "Account created successfully"),
	)
}

// Refresh re-validates the session against the backend.
func (h *SessionHandler) Refresh(c *fiber.Ctx) error {
	ctx := c.UserContext()

	authenticated := h.session.CheckAuthStatus(ctx)
	return c.JSON(entity.NewSuccessResponse(fiber.Map{
		"authenticated": authenticated,
	}, "Session re-validated"))
}

// Logout drops the session. Always succeeds locally.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	h.session.Logout(ctx)
	return c.JSON(entity.NewSuccessResponse(nil, "Logged out successfully"))
}
