package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"hrbridge/internal/domain/entity"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// Health reports whether the agent itself is up.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(entity.NewSuccessResponse(HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}, "Service is healthy"))
}
