package usecase

import (
	"context"

	"go.uber.org/zap"

	"hrbridge/internal/domain/entity"
	"hrbridge/internal/domain/repository"
)

// MeetingUsecase schedules and lists video meetings. Meetings are never
// cached: every caller fetches fresh.
type MeetingUsecase interface {
	List(ctx context.Context, userID string) ([]entity.Meeting, error)
	Create(ctx context.Context, req *entity.CreateMeetingRequest) (*entity.Meeting, error)
	Delete(ctx context.Context, meetingID, userID string) error
	ZoomStatus(ctx context.Context) (bool, error)
	ZoomConnectURL() string
	VideoSignature(ctx context.Context, sessionName string, role int) (*entity.VideoSignatureResponse, error)
}

type meetingUsecase struct {
	repo   repository.MeetingRepository
	logger *zap.Logger
}

func NewMeetingUsecase(repo repository.MeetingRepository, logger *zap.Logger) MeetingUsecase {
	return &meetingUsecase{
		repo:   repo,
		logger: logger,
	}
}

func (u *meetingUsecase) List(ctx context.Context, userID string) ([]entity.Meeting, error) {
	if userID == "" {
		return nil, NewPreconditionError("user id is required")
	}

	meetings, err := u.repo.List(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to list meetings", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return meetings, nil
}

func (u *meetingUsecase) Create(ctx context.Context, req *entity.CreateMeetingRequest) (*entity.Meeting, error) {
	if req.Topic == "" {
		return nil, NewPreconditionError("meeting topic is required")
	}
	if req.Duration <= 0 {
		return nil, NewPreconditionError("meeting duration must be greater than 0")
	}
	if req.UserID == "" {
		return nil, NewPreconditionError("user id is required")
	}

	meeting, err := u.repo.Create(ctx, req)
	if err != nil {
		u.logger.Error("Failed to create meeting", zap.String("topic", req.Topic), zap.Error(err))
		return nil, err
	}

	u.logger.Info("Meeting created",
		zap.String("meeting_id", meeting.ID),
		zap.String("topic", meeting.Topic),
	)
	return meeting, nil
}

func (u *meetingUsecase) Delete(ctx context.Context, meetingID, userID string) error {
	if meetingID == "" || userID == "" {
		return NewPreconditionError("meeting id and user id are required")
	}

	if err := u.repo.Delete(ctx, meetingID, userID); err != nil {
		u.logger.Error("Failed to delete meeting", zap.String("meeting_id", meetingID), zap.Error(err))
		return err
	}

	u.logger.Info("Meeting deleted", zap.String("meeting_id", meetingID))
	return nil
}

func (u *meetingUsecase) ZoomStatus(ctx context.Context) (bool, error) {
	return u.repo.ZoomStatus(ctx)
}

func (u *meetingUsecase) ZoomConnectURL() string {
	return u.repo.ZoomConnectURL()
}

func (u *meetingUsecase) VideoSignature(ctx context.Context, sessionName string, role int) (*entity.VideoSignatureResponse, error) {
	if sessionName == "" {
		return nil, NewPreconditionError("session name is required")
	}

	signature, err := u.repo.VideoSignature(ctx, sessionName, role)
	if err != nil {
		u.logger.Error("Failed to get video signature", zap.String("session_name", sessionName), zap.Error(err))
		return nil, err
	}

	return signature, nil
}
