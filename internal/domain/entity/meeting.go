package entity

import "time"

// Meeting is a scheduled video meeting. Meetings are never cached by the
// agent; every view fetches them fresh.
type Meeting struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	StartTime time.Time `json:"start_time"`
	Duration  int       `json:"duration"`
	JoinURL   string    `json:"join_url"`
}

// MeetingListResponse is the payload of GET /api/meetings.
type MeetingListResponse struct {
	Meetings []Meeting `json:"meetings"`
}

// CreateMeetingRequest is the payload of POST /api/meetings.
type CreateMeetingRequest struct {
	Topic     string    `json:"topic"`
	StartTime time.Time `json:"start_time"`
	Duration  int       `json:"duration"`
	Agenda    string    `json:"agenda,omitempty"`
	UserID    string    `json:"userId"`
}

// ZoomStatusResponse is the payload of the video provider status check.
type ZoomStatusResponse struct {
	ZoomConnected bool `json:"zoomConnected"`
}

// VideoSignatureRequest exchanges the session for a video-session signature.
type VideoSignatureRequest struct {
	SessionName string `json:"sessionName"`
	Role        int    `json:"role"`
}

// VideoSignatureResponse carries the signed token and the joining user.
type VideoSignatureResponse struct {
	Signature string      `json:"signature"`
	User      UserProfile `json:"user"`
}
