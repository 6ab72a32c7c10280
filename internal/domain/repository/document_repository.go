package repository

import (
	"context"

	"hrbridge/internal/domain/entity"
)

// DocumentRepository talks to the backend's e-signature endpoints.
type DocumentRepository interface {
	// List returns the full document list.
	List(ctx context.Context) ([]entity.Document, error)
	// Upload submits a file with title and description as multipart form data.
	Upload(ctx context.Context, title, description, filename, contentType string, data []byte) (*entity.Document, error)
	// Get returns one document.
	Get(ctx context.Context, documentID string) (*entity.Document, error)
	// Status returns the current status and signers of one document.
	Status(ctx context.Context, documentID string) (*entity.DocumentStatusResult, error)
	// Reset forces a document back to draft.
	Reset(ctx context.Context, documentID string) error
	// CreateSigningRequest posts the signer list for a document.
	CreateSigningRequest(ctx context.Context, documentID string, signers []entity.SignerInput) error
	// SigningURL fetches a one-time signing URL for a specific signer.
	SigningURL(ctx context.Context, documentID, email string) (string, error)
	// DownloadURL composes the download endpoint URL; no request is made.
	DownloadURL(documentID string) string
	// ZohoStatus reports whether the e-signature provider is connected.
	ZohoStatus(ctx context.Context) (bool, error)
	// DisconnectZoho disconnects the e-signature provider.
	DisconnectZoho(ctx context.Context) error
	// ZohoConnectURL composes the redirect-based connect URL.
	ZohoConnectURL() string
	// ZohoReconnectURL composes the connect URL that forces a fresh login.
	ZohoReconnectURL() string
}
