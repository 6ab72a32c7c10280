package entity

import (
	"strings"
	"time"
)

// DocumentStatus is the server-authoritative lifecycle state of a document.
// The agent never computes a transition itself; it adopts whatever the
// backend returns.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusPending   DocumentStatus = "pending"
	StatusSent      DocumentStatus = "sent"
	StatusViewed    DocumentStatus = "viewed"
	StatusCompleted DocumentStatus = "completed"
	StatusDeclined  DocumentStatus = "declined"
	StatusExpired   DocumentStatus = "expired"
)

// StatusBadge is the label/style pair a status renders as.
type StatusBadge struct {
	Label string `json:"label"`
	Style string `json:"style"`
}

var statusStyles = map[DocumentStatus]string{
	StatusDraft:     "gray",
	StatusPending:   "yellow",
	StatusSent:      "blue",
	StatusViewed:    "purple",
	StatusCompleted: "green",
	StatusDeclined:  "red",
	StatusExpired:   "gray",
}

// Badge maps a status to its display badge. The mapping is total: an
// unknown status falls back to the draft style.
func (s DocumentStatus) Badge() StatusBadge {
	style, ok := statusStyles[s]
	if !ok {
		style = statusStyles[StatusDraft]
	}
	return StatusBadge{Label: capitalize(string(s)), Style: style}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Document is an immutable snapshot of an e-signature document. Stores
// replace whole entities or splice server-returned fields into a copy;
// fields are never mutated in place.
type Document struct {
	ID          string         `json:"_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      DocumentStatus `json:"status"`
	Signers     []Signer       `json:"signers"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Signer belongs to its parent document and has no independent lifecycle.
type Signer struct {
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Status DocumentStatus `json:"status"`
}

// SignerInput names a recipient of a signing request.
type SignerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DocumentStatusResult is the payload of the per-document status endpoint.
type DocumentStatusResult struct {
	Status  DocumentStatus `json:"status"`
	Signers []Signer       `json:"signers"`
}

// SigningURLResponse is the payload of the per-signer signing URL endpoint.
type SigningURLResponse struct {
	SigningURL string `json:"signingUrl"`
}

// ZohoStatusResponse is the payload of the e-signature provider status check.
type ZohoStatusResponse struct {
	ZohoAuthenticated bool `json:"zohoAuthenticated"`
}
