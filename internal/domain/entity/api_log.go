package entity

import "time"

// APILog is one entry in the outbound request audit trail.
type APILog struct {
	ID           int64     `json:"id"`
	Endpoint     string    `json:"endpoint"`
	Method       string    `json:"method"`
	RequestBody  string    `json:"request_body"`
	ResponseBody string    `json:"response_body"`
	StatusCode   int       `json:"status_code"`
	Duration     int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}
