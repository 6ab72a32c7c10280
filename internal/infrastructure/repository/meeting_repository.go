package repository

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"hrbridge/internal/domain/entity"
	"hrbridge/internal/domain/repository"
	"hrbridge/internal/infrastructure/httpclient"
)

type meetingRepository struct {
	client httpclient.APIClient
	logger *zap.Logger
}

func NewMeetingRepository(client httpclient.APIClient, logger *zap.Logger) repository.MeetingRepository {
	return &meetingRepository{
		client: client,
		logger: logger,
	}
}

func (r *meetingRepository) List(ctx context.Context, userID string) ([]entity.Meeting, error) {
	var response entity.MeetingListResponse
	path := "/api/meetings?userId=" + url.QueryEscape(userID)
	if err := r.client.Get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	return response.Meetings, nil
}

func (r *meetingRepository) Create(ctx context.Context, req *entity.CreateMeetingRequest) (*entity.Meeting, error) {
	var meeting entity.Meeting
	if err := r.client.Post(ctx, "/api/meetings", req, &meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	return &meeting, nil
}

func (r *meetingRepository) Delete(ctx context.Context, meetingID, userID string) error {
	path := fmt.Sprintf("/api/meetings/%s?userId=%s", url.PathEscape(meetingID), url.QueryEscape(userID))
	if err := r.client.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}

	return nil
}

func (r *meetingRepository) ZoomStatus(ctx context.Context) (bool, error) {
	var status entity.ZoomStatusResponse
	if err := r.client.Get(ctx, "/api/auth/status", &status); err != nil {
		return false, fmt.Errorf("failed to check Zoom status: %w", err)
	}

	return status.ZoomConnected, nil
}

func (r *meetingRepository) ZoomConnectURL() string {
	return r.client.URL("/api/auth/zoom")
}

func (r *meetingRepository) VideoSignature(ctx context.Context, sessionName string, role int) (*entity.VideoSignatureResponse, error) {
	body := &entity.VideoSignatureRequest{
		SessionName: sessionName,
		Role:        role,
	}

	var response entity.VideoSignatureResponse
	if err := r.client.Post(ctx, "/authenticated", body, &response); err != nil {
		return nil, fmt.Errorf("failed to get video signature: %w", err)
	}

	return &response, nil
}
