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

type documentRepository struct {
	client httpclient.APIClient
	logger *zap.Logger
}

func NewDocumentRepository(client httpclient.APIClient, logger *zap.Logger) repository.DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) List(ctx context.Context) ([]entity.Document, error) {
	var documents []entity.Document
	if err := r.client.Get(ctx, "/api/esign/documents", &documents); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return documents, nil
}

func (r *documentRepository) Upload(ctx context.Context, title, description, filename, contentType string, data []byte) (*entity.Document, error) {
	fields := map[string]string{
		"title":       title,
		"description": description,
	}
	files := map[string]httpclient.FileUpload{
		"file": {
			Filename:    filename,
			ContentType: contentType,
			Content:     data,
		},
	}

	var document entity.Document
	if err := r.client.PostMultipart(ctx, "/api/esign/documents", fields, files, &document); err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	return &document, nil
}

func (r *documentRepository) Get(ctx context.Context, documentID string) (*entity.Document, error) {
	var document entity.Document
	path := "/api/esign/documents/" + url.PathEscape(documentID)
	if err := r.client.Get(ctx, path, &document); err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return &document, nil
}

func (r *documentRepository) Status(ctx context.Context, documentID string) (*entity.DocumentStatusResult, error) {
	var result entity.DocumentStatusResult
	path := fmt.Sprintf("/api/esign/documents/%s/status", url.PathEscape(documentID))
	if err := r.client.Get(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("failed to get document status: %w", err)
	}

	return &result, nil
}

func (r *documentRepository) Reset(ctx context.Context, documentID string) error {
	path := fmt.Sprintf("/api/esign/documents/%s/reset", url.PathEscape(documentID))
	if err := r.client.Post(ctx, path, map[string]string{}, nil); err != nil {
		return fmt.Errorf("failed to reset document: %w", err)
	}

	return nil
}

func (r *documentRepository) CreateSigningRequest(ctx context.Context, documentID string, signers []entity.SignerInput) error {
	body := map[string]interface{}{
		"signers": signers,
	}

	path := fmt.Sprintf("/api/esign/documents/%s/sign", url.PathEscape(documentID))
	if err := r.client.Post(ctx, path, body, nil); err != nil {
		return fmt.Errorf("failed to create signing request: %w", err)
	}

	return nil
}

func (r *documentRepository) SigningURL(ctx context.Context, documentID, email string) (string, error) {
	var result entity.SigningURLResponse
	path := fmt.Sprintf("/api/esign/documents/%s/sign/%s", url.PathEscape(documentID), url.PathEscape(email))
	if err := r.client.Get(ctx, path, &result); err != nil {
		return "", fmt.Errorf("failed to get signing URL: %w", err)
	}

	return result.SigningURL, nil
}

func (r *documentRepository) DownloadURL(documentID string) string {
	return r.client.URL(fmt.Sprintf("/api/esign/documents/%s/download", url.PathEscape(documentID)))
}

func (r *documentRepository) ZohoStatus(ctx context.Context) (bool, error) {
	var status entity.ZohoStatusResponse
	if err := r.client.Get(ctx, "/api/esign/zoho/status", &status); err != nil {
		return false, fmt.Errorf("failed to check Zoho status: %w", err)
	}

	return status.ZohoAuthenticated, nil
}

func (r *documentRepository) DisconnectZoho(ctx context.Context) error {
	if err := r.client.Post(ctx, "/api/esign/zoho/disconnect", map[string]string{}, nil); err != nil {
		return fmt.Errorf("failed to disconnect Zoho: %w", err)
	}

	return nil
}

func (r *documentRepository) ZohoConnectURL() string {
	return r.client.URL("/api/esign/auth/zoho")
}

func (r *documentRepository) ZohoReconnectURL() string {
	return r.client.URL("/api/esign/auth/zoho/new")
}
