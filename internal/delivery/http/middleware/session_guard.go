package middleware

import (
	"github.com/gofiber/fiber/v2"

	"hrbridge/internal/domain/entity"
	"hrbridge/internal/usecase"
)

// SessionGuard protects routes that require an authenticated backend
// session. While the initial session check is still in flight it answers
// with a placeholder instead of a premature rejection, so callers retry
// rather than bounce the user to login.
func SessionGuard(session usecase.SessionUsecase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snapshot := session.Snapshot()

		if snapshot.Loading {
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(
				entity.NewErrorResponse("SESSION_LOADING", "Session state is still being determined"),
			)
		}

		if !snapshot.Authenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(
				entity.NewErrorResponse("UNAUTHENTICATED", "Authentication required"),
			)
		}

		return c.Next()
	}
}
