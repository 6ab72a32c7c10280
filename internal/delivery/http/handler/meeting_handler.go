package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"hrbridge/internal/domain/entity"
	"hrbridge/internal/usecase"
)

type MeetingHandler struct {
	meetings usecase.MeetingUsecase
	logger   *zap.Logger
}

func NewMeetingHandler(meetings usecase.MeetingUsecase, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{
		meetings: meetings,
		logger:   logger,
	}
}

// List returns the user's scheduled meetings.
func (h *MeetingHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "userId query parameter is required"),
		)
	}

	meetings, err := h.meetings.List(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to list meetings", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(entity.MeetingListResponse{
		Meetings: meetings,
	}, "Meetings retrieved successfully"))
}

// Create schedules a new meeting.
func (h *MeetingHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req entity.CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Invalid request body"),
		)
	}

	meeting, err := h.meetings.Create(ctx, &req)
	if err != nil {
		h.logger.Error("Failed to create meeting", zap.Error(err))
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(
		entity.NewSuccessResponse(meeting, "Meeting created successfully"),
	)
}

// Delete cancels a meeting.
func (h *MeetingHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "userId query parameter is required"),
		)
	}

	if err := h.meetings.Delete(ctx, c.Params("id"), userID); err != nil {
		h.logger.Error("Failed to delete meeting", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(nil, "Meeting deleted successfully"))
}

// ZoomStatus reports whether the video provider is connected.
func (h *MeetingHandler) ZoomStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	connected, err := h.meetings.ZoomStatus(ctx)
	if err != nil {
		h.logger.Error("Failed to check Zoom status", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(entity.ZoomStatusResponse{
		ZoomConnected: connected,
	}, "Zoom status retrieved"))
}

// ZoomConnect hands the caller off to the video provider connect flow.
func (h *MeetingHandler) ZoomConnect(c *fiber.Ctx) error {
	return c.Redirect(h.meetings.ZoomConnectURL(), fiber.StatusFound)
}

// VideoSignature issues a signature for joining a video session.
func (h *MeetingHandler) VideoSignature(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req entity.VideoSignatureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Invalid request body"),
		)
	}

	signature, err := h.meetings.VideoSignature(ctx, req.SessionName, req.Role)
	if err != nil {
		h.logger.Error("Failed to issue video signature", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(signature, "Video signature issued"))
}
