package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hrbridge/internal/domain/entity"
	"hrbridge/internal/infrastructure/upload"
	"hrbridge/internal/usecase"
)

// respondError maps an operation failure onto the local surface. Backend
// failures keep their status code so the caller sees what the backend saw;
// precondition failures are 400; the recoverable status-refresh
// inconsistency gets its own code so callers can offer the reset action.
func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, usecase.ErrResetRequired) {
		return c.Status(fiber.StatusConflict).JSON(
			entity.NewErrorResponse("RESET_REQUIRED", err.Error()),
		)
	}

	if upload.IsValidationError(err) || usecase.IsPreconditionError(err) {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("VALIDATION_ERROR", err.Error()),
		)
	}

	if be, ok := entity.AsBackendError(err); ok {
		code := be.StatusCode
		if code < 400 || code > 599 {
			code = fiber.StatusBadGateway
		}
		return c.Status(code).JSON(
			entity.NewErrorResponse("BACKEND_ERROR", be.Message),
		)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(
		entity.NewErrorResponse("INTERNAL_ERROR", err.Error()),
	)
}
