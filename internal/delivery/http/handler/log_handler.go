package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"hrbridge/internal/domain/entity"
	"hrbridge/internal/infrastructure/repository"
)

// LogHandler exposes the outbound request audit trail.
type LogHandler struct {
	logs   repository.APILogRepository
	logger *zap.Logger
}

func NewLogHandler(logs repository.APILogRepository, logger *zap.Logger) *LogHandler {
	return &LogHandler{
		logs:   logs,
		logger: logger,
	}
}

func (h *LogHandler) Recent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	entries, err := h.logs.Recent(ctx, c.QueryInt("limit"))
	if err != nil {
		h.logger.Error("Failed to read API logs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(
			entity.NewErrorResponse("INTERNAL_ERROR", "Failed to read API logs"),
		)
	}

	return c.JSON(entity.NewSuccessResponse(entries, "API logs retrieved"))
}
