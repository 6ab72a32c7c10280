package repository

import (
	"context"

	"hrbridge/internal/domain/entity"
)

// MeetingRepository talks to the backend's meeting endpoints.
type MeetingRepository interface {
	// List returns the user's scheduled meetings.
	List(ctx context.Context, userID string) ([]entity.Meeting, error)
	// Create schedules a meeting.
	Create(ctx context.Context, req *entity.CreateMeetingRequest) (*entity.Meeting, error)
	// Delete removes a meeting.
	Delete(ctx context.Context, meetingID, userID string) error
	// ZoomStatus reports whether the video provider is connected.
	ZoomStatus(ctx context.Context) (bool, error)
	// ZoomConnectURL composes the redirect-based connect URL.
	ZoomConnectURL() string
	// VideoSignature exchanges the session for a video-session signature.
	VideoSignature(ctx context.Context, sessionName string, role int) (*entity.VideoSignatureResponse, error)
}
