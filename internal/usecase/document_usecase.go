package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"hrbridge/internal/domain/entity"
	"hrbridge/internal/domain/repository"
	"hrbridge/internal/infrastructure/upload"
)

// statusNotSentMessage is the backend's error for a status refresh on a
// document it does not consider sent. The condition is recoverable via
// Reset, so it gets its own error instead of the generic banner.
const statusNotSentMessage = "Document has not been sent for signing yet"

// ErrResetRequired marks a document stuck in an inconsistent sent state.
// Callers should offer the reset-to-draft escape hatch.
var ErrResetRequired = errors.New("document status is out of sync, reset required")

// UploadInput is a document upload prior to validation.
type UploadInput struct {
	Title       string
	Description string
	Filename    string
	ContentType string
	Data        []byte
}

// DocumentUsecase caches the e-signature document list and exposes the
// operations against it. Operations overlap freely; the later response
// wins on the shared list, matching how the callers serialize actions.
type DocumentUsecase interface {
	// Documents returns the cached list.
	Documents() []entity.Document
	// LastError returns the most recent operation failure message, or "".
	LastError() string
	// Fetch replaces the cached list with the backend's. A no-op while
	// unauthenticated. On failure the previous list is retained.
	Fetch(ctx context.Context) error
	// Upload validates and submits a new document, then refreshes the list.
	Upload(ctx context.Context, in UploadInput) (*entity.Document, error)
	// Get fetches one document without touching the cached list.
	Get(ctx context.Context, documentID string) (*entity.Document, error)
	// CreateSigningRequest posts the signer list, then refreshes.
	CreateSigningRequest(ctx context.Context, documentID string, signers []entity.SignerInput) error
	// SigningURL fetches a one-time signing URL for a specific signer.
	SigningURL(ctx context.Context, documentID, email string) (string, error)
	// RefreshStatus adopts the server's status and signers for one cached
	// entry; all other entries are untouched.
	RefreshStatus(ctx context.Context, documentID string) (*entity.DocumentStatusResult, error)
	// Reset forces a document back to draft.
	Reset(ctx context.Context, documentID string) error
	// DownloadURL composes the download endpoint; fire and forget.
	DownloadURL(documentID string) string
	// ZohoStatus reports the e-signature provider connection state.
	ZohoStatus(ctx context.Context) (bool, error)
	// DisconnectZoho disconnects the e-signature provider.
	DisconnectZoho(ctx context.Context) error
	// ZohoConnectURL composes the redirect-based connect URL.
	ZohoConnectURL() string
	// ZohoReconnectURL composes the connect URL forcing a fresh login.
	ZohoReconnectURL() string
}

type documentUsecase struct {
	mu        sync.RWMutex
	documents []entity.Document
	lastError string

	repo      repository.DocumentRepository
	session   SessionUsecase
	validator *upload.Validator
	logger    *zap.Logger
}

func NewDocumentUsecase(repo repository.DocumentRepository, session SessionUsecase, validator *upload.Validator, logger *zap.Logger) DocumentUsecase {
	return &documentUsecase{
		repo:      repo,
		session:   session,
		validator: validator,
		logger:    logger,
	}
}

func (u *documentUsecase) Documents() []entity.Document {
	u.mu.RLock()
	defer u.mu.RUnlock()

	docs := make([]entity.Document, len(u.documents))
	copy(docs, u.documents)
	return docs
}

func (u *documentUsecase) LastError() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.lastError
}

func (u *documentUsecase) Fetch(ctx context.Context) error {
	if !u.session.Snapshot().Authenticated {
		return nil
	}

	documents, err := u.repo.List(ctx)
	if err != nil {
		u.recordError(err, "Failed to fetch documents")
		return err
	}

	u.mu.Lock()
	u.documents = documents
	u.lastError = ""
	u.mu.Unlock()

	u.logger.Info("Documents fetched", zap.Int("count", len(documents)))
	return nil
}

func (u *documentUsecase) Upload(ctx context.Context, in UploadInput) (*entity.Document, error) {
	if in.Title == "" {
		err := NewPreconditionError("document title is required")
		u.recordError(err, "")
		return nil, err
	}

	// Precondition checks happen before any network call.
	if err := u.validator.Validate(in.Filename, in.ContentType, int64(len(in.Data))); err != nil {
		u.recordError(err, "")
		return nil, err
	}

	document, err := u.repo.Upload(ctx, in.Title, in.Description, in.Filename, in.ContentType, in.Data)
	if err != nil {
		u.recordError(err, "Failed to upload document")
		return nil, err
	}

	u.logger.Info("Document uploaded",
		zap.String("document_id", document.ID),
		zap.String("title", document.Title),
		zap.String("status", string(document.Status)),
	)

	u.clearError()

	// Refresh so the new document shows up in the cached list. The upload
	// itself already succeeded, so a refresh failure is the refresh's
	// problem, not the caller's; it stays visible via LastError.
	if err := u.Fetch(ctx); err != nil {
		u.logger.Warn("Post-upload refresh failed", zap.Error(err))
	}

	return document, nil
}

func (u *documentUsecase) Get(ctx context.Context, documentID string) (*entity.Document, error) {
	document, err := u.repo.Get(ctx, documentID)
	if err != nil {
		u.recordError(err, "Failed to fetch document details")
		return nil, err
	}

	u.clearError()
	return document, nil
}

func (u *documentUsecase) CreateSigningRequest(ctx context.Context, documentID string, signers []entity.SignerInput) error {
	if len(signers) == 0 {
		err := NewPreconditionError("at least one signer is required")
		u.recordError(err, "")
		return err
	}
	for i, signer := range signers {
		if signer.Name == "" || signer.Email == "" {
			err := NewPreconditionError(fmt.Sprintf("signer %d: name and email are required", i+1))
			u.recordError(err, "")
			return err
		}
	}

	if err := u.repo.CreateSigningRequest(ctx, documentID, signers); err != nil {
		u.recordError(err, "Failed to create signing request")
		return err
	}

	u.logger.Info("Signing request created",
		zap.String("document_id", documentID),
		zap.Int("signers", len(signers)),
	)

	u.clearError()

	if err := u.Fetch(ctx); err != nil {
		u.logger.Warn("Post-signing-request refresh failed", zap.Error(err))
	}

	return nil
}

func (u *documentUsecase) SigningURL(ctx context.Context, documentID, email string) (string, error) {
	signingURL, err := u.repo.SigningURL(ctx, documentID, email)
	if err != nil {
		u.recordError(err, "Failed to get signing URL")
		return "", err
	}

	u.clearError()
	return signingURL, nil
}

func (u *documentUsecase) RefreshStatus(ctx context.Context, documentID string) (*entity.DocumentStatusResult, error) {
	result, err := u.repo.Status(ctx, documentID)
	if err != nil {
		if u.isResetRequired(documentID, err) {
			u.recordError(err, "")
			return nil, fmt.Errorf("%w: %s", ErrResetRequired, statusNotSentMessage)
		}
		u.recordError(err, "Failed to refresh document status")
		return nil, err
	}

	u.spliceStatus(documentID, result.Status, result.Signers)
	u.clearError()
	return result, nil
}

func (u *documentUsecase) Reset(ctx context.Context, documentID string) error {
	if err := u.repo.Reset(ctx, documentID); err != nil {
		u.recordError(err, "Failed to reset document")
		return err
	}

	// The reset endpoint forces draft server-side; mirror it locally.
	u.spliceStatus(documentID, entity.StatusDraft, nil)
	u.clearError()

	u.logger.Info("Document reset to draft", zap.String("document_id", documentID))
	return nil
}

func (u *documentUsecase) DownloadURL(documentID string) string {
	return u.repo.DownloadURL(documentID)
}

func (u *documentUsecase) ZohoStatus(ctx context.Context) (bool, error) {
	return u.repo.ZohoStatus(ctx)
}

func (u *documentUsecase) DisconnectZoho(ctx context.Context) error {
	if err := u.repo.DisconnectZoho(ctx); err != nil {
		u.recordError(err, "Failed to disconnect from Zoho")
		return err
	}

	u.clearError()
	return nil
}

func (u *documentUsecase) ZohoConnectURL() string {
	return u.repo.ZohoConnectURL()
}

func (u *documentUsecase) ZohoReconnectURL() string {
	return u.repo.ZohoReconnectURL()
}

// isResetRequired reports whether the refresh failure is the recoverable
// "backend never sent it" inconsistency on a locally sent document.
func (u *documentUsecase) isResetRequired(documentID string, err error) bool {
	be, ok := entity.AsBackendError(err)
	if !ok || be.Message != statusNotSentMessage {
		return false
	}

	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, doc := range u.documents {
		if doc.ID == documentID {
			return doc.Status == entity.StatusSent
		}
	}
	return false
}

// spliceStatus adopts server-returned status and signers for one entry,
// replacing it with a shallow copy. Other entries are untouched. A nil
// signers slice keeps the existing signers.
func (u *documentUsecase) spliceStatus(documentID string, status entity.DocumentStatus, signers []entity.Signer) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i, doc := range u.documents {
		if doc.ID != documentID {
			continue
		}
		updated := doc
		updated.Status = status
		if signers != nil {
			updated.Signers = signers
		}
		u.documents[i] = updated
		return
	}
}

// recordError sets the shared last-error message. fallback covers failures
// without a server-provided message; pass "" to use err.Error() directly.
func (u *documentUsecase) recordError(err error, fallback string) {
	message := err.Error()
	if be, ok := entity.AsBackendError(err); ok {
		message = be.Message
		if message == "request failed" && fallback != "" {
			message = fallback
		}
	} else if fallback != "" && !upload.IsValidationError(err) {
		message = fallback
	}

	u.mu.Lock()
	u.lastError = message
	u.mu.Unlock()

	u.logger.Error("Document operation failed", zap.Error(err))
}

func (u *documentUsecase) clearError() {
	u.mu.Lock()
	u.lastError = ""
	u.mu.Unlock()
}
