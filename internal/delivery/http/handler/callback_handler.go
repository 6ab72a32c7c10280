package handler

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"hrbridge/internal/domain/entity"
	"hrbridge/internal/usecase"
)

// CallbackHandler terminates the redirect-based external login flow. The
// provider redirects the browser here with either an error marker or a
// URL-encoded user payload.
type CallbackHandler struct {
	flow   usecase.AuthFlowUsecase
	logger *zap.Logger
}

func NewCallbackHandler(flow usecase.AuthFlowUsecase, logger *zap.Logger) *CallbackHandler {
	return &CallbackHandler{
		flow:   flow,
		logger: logger,
	}
}

func (h *CallbackHandler) Complete(c *fiber.Ctx) error {
	values, err := queryValues(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Malformed callback query"),
		)
	}

	result, err := h.flow.Complete(values)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProviderDenied):
			return c.Status(fiber.StatusUnauthorized).JSON(
				entity.NewErrorResponse("AUTH_DENIED", err.Error()),
			)
		case errors.Is(err, usecase.ErrMissingAuthData):
			return c.Status(fiber.StatusBadRequest).JSON(
				entity.NewErrorResponse("AUTH_INCOMPLETE", err.Error()),
			)
		default:
			h.logger.Error("Auth callback failed", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(
				entity.NewErrorResponse("AUTH_INCOMPLETE", err.Error()),
			)
		}
	}

	return c.JSON(entity.NewSuccessResponse(fiber.Map{
		"userId": result.UserID,
	}, "Authentication completed"))
}

// queryValues re-parses the raw query so percent-encoded JSON payloads
// survive intact.
func queryValues(c *fiber.Ctx) (url.Values, error) {
	return url.ParseQuery(string(c.Request().URI().QueryString()))
}
