package usecase

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"hrbridge/internal/domain/entity"
)

type fakeMeetingRepo struct {
	meetings []entity.Meeting

	createCalls int
	deleteCalls int
}

func (f *fakeMeetingRepo) List(ctx context.Context, userID string) ([]entity.Meeting, error) {
	return f.meetings, nil
}

func (f *fakeMeetingRepo) Create(ctx context.Context, req *entity.CreateMeetingRequest) (*entity.Meeting, error) {
	f.createCalls++
	return &entity.Meeting{ID: "m1", Topic: req.Topic, Duration: req.Duration}, nil
}

func (f *fakeMeetingRepo) Delete(ctx context.Context, meetingID, userID string) error {
	f.deleteCalls++
	return nil
}

func (f *fakeMeetingRepo) ZoomStatus(ctx context.Context) (bool, error) { return true, nil }
func (f *fakeMeetingRepo) ZoomConnectURL() string                       { return "https://backend.example.com/api/auth/zoom" }

func (f *fakeMeetingRepo) VideoSignature(ctx context.Context, sessionName string, role int) (*entity.VideoSignatureResponse, error) {
	return &entity.VideoSignatureResponse{Signature: "sig"}, nil
}

func TestCreateMeetingValidatesInput(t *testing.T) {
	repo := &fakeMeetingRepo{}
	meetings := NewMeetingUsecase(repo, zap.NewNop())

	tests := []struct {
		name string
		req  entity.CreateMeetingRequest
	}{
		{"missing topic", entity.CreateMeetingRequest{Duration: 30, UserID: "u1"}},
		{"zero duration", entity.CreateMeetingRequest{Topic: "Standup", UserID: "u1"}},
		{"negative duration", entity.CreateMeetingRequest{Topic: "Standup", Duration: -5, UserID: "u1"}},
		{"missing user", entity.CreateMeetingRequest{Topic: "Standup", Duration: 30}},
	}

	for _, tt := range tests {
		req := tt.req
		_, err := meetings.Create(context.Background(), &req)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !IsPreconditionError(err) {
			t.Errorf("%s: error type = %T, want PreconditionError", tt.name, err)
		}
	}
	if repo.createCalls != 0 {
		t.Errorf("invalid requests reached the backend %d times", repo.createCalls)
	}
}

func TestCreateMeetingPassesThrough(t *testing.T) {
	repo := &fakeMeetingRepo{}
	meetings := NewMeetingUsecase(repo, zap.NewNop())

	meeting, err := meetings.Create(context.Background(), &entity.CreateMeetingRequest{
		Topic:    "Standup",
		Duration: 30,
		UserID:   "u1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if meeting.Topic != "Standup" {
		t.Errorf("Topic = %q", meeting.Topic)
	}
	if repo.createCalls != 1 {
		t.Errorf("backend called %d times, want 1", repo.createCalls)
	}
}

func TestListMeetingsRequiresUserID(t *testing.T) {
	meetings := NewMeetingUsecase(&fakeMeetingRepo{}, zap.NewNop())

	if _, err := meetings.List(context.Background(), ""); err == nil {
		t.Error("expected error for empty user id")
	}
}

func TestDeleteMeetingRequiresIDs(t *testing.T) {
	repo := &fakeMeetingRepo{}
	meetings := NewMeetingUsecase(repo, zap.NewNop())

	if err := meetings.Delete(context.Background(), "", "u1"); err == nil {
		t.Error("expected error for empty meeting id")
	}
	if err := meetings.Delete(context.Background(), "m1", ""); err == nil {
		t.Error("expected error for empty user id")
	}
	if repo.deleteCalls != 0 {
		t.Errorf("invalid deletes reached the backend %d times", repo.deleteCalls)
	}
}

func TestVideoSignatureRequiresSessionName(t *testing.T) {
	meetings := NewMeetingUsecase(&fakeMeetingRepo{}, zap.NewNop())

	if _, err := meetings.VideoSignature(context.Background(), "", 0); err == nil {
		t.Error("expected error for empty session name")
	}
}
