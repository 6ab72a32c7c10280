package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"hrbridge/internal/config"
	"hrbridge/internal/domain/entity"
	"hrbridge/internal/infrastructure/upload"
)

type fakeDocumentRepo struct {
	documents []entity.Document
	listErr   error

	uploaded  *entity.Document
	uploadErr error

	statusResult *entity.DocumentStatusResult
	statusErr    error

	resetErr error
	signErr  error

	listCalls   int
	uploadCalls int
	resetCalls  int
	signCalls   int
}

func (f *fakeDocumentRepo) List(ctx context.Context) ([]entity.Document, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	docs := make([]entity.Document, len(f.documents))
	copy(docs, f.documents)
	return docs, nil
}

func (f *fakeDocumentRepo) Upload(ctx context.Context, title, description, filename, contentType string, data []byte) (*entity.Document, error) {
	f.uploadCalls++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	if f.uploaded != nil {
		f.documents = append(f.documents, *f.uploaded)
	}
	return f.uploaded, nil
}

func (f *fakeDocumentRepo) Get(ctx context.Context, documentID string) (*entity.Document, error) {
	for _, doc := range f.documents {
		if doc.ID == documentID {
			found := doc
			return &found, nil
		}
	}
	return nil, &entity.BackendError{StatusCode: 404, Message: "Document not found"}
}

func (f *fakeDocumentRepo) Status(ctx context.Context, documentID string) (*entity.DocumentStatusResult, error) {
	return f.statusResult, f.statusErr
}

func (f *fakeDocumentRepo) Reset(ctx context.Context, documentID string) error {
	f.resetCalls++
	return f.resetErr
}

func (f *fakeDocumentRepo) CreateSigningRequest(ctx context.Context, documentID string, signers []entity.SignerInput) error {
	f.signCalls++
	return f.signErr
}

func (f *fakeDocumentRepo) SigningURL(ctx context.Context, documentID, email string) (string, error) {
	return "https://sign.example.com/" + documentID + "/" + email, nil
}

func (f *fakeDocumentRepo) DownloadURL(documentID string) string {
	return "https://backend.example.com/api/esign/documents/" + documentID + "/download"
}

func (f *fakeDocumentRepo) ZohoStatus(ctx context.Context) (bool, error) { return true, nil }
func (f *fakeDocumentRepo) DisconnectZoho(ctx context.Context) error     { return nil }
func (f *fakeDocumentRepo) ZohoConnectURL() string                       { return "https://backend.example.com/api/esign/auth/zoho" }
func (f *fakeDocumentRepo) ZohoReconnectURL() string                     { return "https://backend.example.com/api/esign/auth/zoho/new" }

func testValidator(t *testing.T) *upload.Validator {
	t.Helper()
	cfg := &config.Config{}
	cfg.Upload.MaxSizeMB = 10
	cfg.Upload.AllowedTypes = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	return upload.NewValidator(cfg, zap.NewNop())
}

func authenticatedSession(t *testing.T) SessionUsecase {
	t.Helper()
	session := NewSessionUsecase(&fakeUserRepo{}, &fakeCredStore{}, zap.NewNop())
	session.Login(testProfile())
	return session
}

func newDocumentUsecase(t *testing.T, repo *fakeDocumentRepo, session SessionUsecase) DocumentUsecase {
	t.Helper()
	return NewDocumentUsecase(repo, session, testValidator(t), zap.NewNop())
}

func sampleDocument(id string, status entity.DocumentStatus) entity.Document {
	return entity.Document{
		ID:        id,
		Title:     "Contract " + id,
		Status:    status,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFetchIsNoopWhileUnauthenticated(t *testing.T) {
	repo := &fakeDocumentRepo{documents: []entity.Document{sampleDocument("d1", entity.StatusDraft)}}
	session := NewSessionUsecase(&fakeUserRepo{}, &fakeCredStore{}, zap.NewNop())
	docs := newDocumentUsecase(t, repo, session)

	if err := docs.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch returned error: %v", err)
	}

	if repo.listCalls != 0 {
		t.Errorf("fetch hit the backend %d times while unauthenticated", repo.listCalls)
	}
	if len(docs.Documents()) != 0 {
		t.Errorf("documents cached while unauthenticated: %v", docs.Documents())
	}
}

func TestFetchReplacesListAndClearsError(t *testing.T) {
	repo := &fakeDocumentRepo{listErr: errors.New("boom")}
	docs := newDocumentUsecase(t, repo, authenticatedSession(t))

	if err := docs.Fetch(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}
	if docs.LastError() == "" {
		t.Error("failed fetch should record an error")
	}

	repo.listErr = nil
	repo.documents = []entity.Document{
		sampleDocument("d1", entity.StatusDraft),
		sampleDocument("d2", entity.StatusSent),
	}

	if err := docs.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if docs.LastError() != "" {
		t.Errorf("successful fetch should clear the error, got %q", docs.LastError())
	}
	if got := len(docs.Documents()); got != 2 {
		t.Errorf("cached %d documents, want 2", got)
	}
}

func TestFetchFailureRetainsPreviousList(t *testing.T) {
	repo := &fakeDocumentRepo{documents: []entity.Document{sampleDocument("d1", entity.StatusDraft)}}
	docs := newDocumentUsecase(t, repo, authenticatedSession(t))

	if err := docs.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	repo.listErr = errors.New("boom")
	if err := docs.Fetch(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}

	if got := len(docs.Documents()); got != 1 {
		t.Errorf("failed fetch wiped the cached list, got %d documents", got)
	}
}

func TestUploadValidDocument(t *testing.T) {
	created := sampleDocument("d9", entity.StatusDraft)
	repo := &fakeDocumentRepo{uploaded: &created}
	docs := newDocumentUsecase(t, repo, authenticatedSession(t))

	data := bytes.Repeat([]byte("a"), 2*1024*1024)
	doc, err := docs.Upload(context.Background(), UploadInput{
		Title:       "Contract",
		Filename:    "contract.pdf",
		ContentType: "application/pdf",
		Data:        data,
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if doc.Status != entity.StatusDraft {
		t.Errorf("new document status = %q, want draft", doc.Status)
	}

	found := false
	for _, cached := range docs.Documents() {
		if cached.ID == "d9" {
			found = true
		}
	}
	if !found {
		t.Error("uploaded document missing from the refreshed list")
	}
}

func TestUploadRejectsWrongTypeBeforeNetwork(t *testing.T) {
	repo := &fakeDocumentRepo{}
	docs := newDocumentUsecase(t, repo, authenticatedSession(t))

	_, err := docs.Upload(context.Background(), UploadInput{
		Title:       "Picture",
		Filename:    "photo.png",
		ContentType: "image/png",
		Data:        []byte("not a document"),
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !upload.IsValidationError(err) {
		t.Errorf("error type = %T, want ValidationError", err)
	}
	if err.Error() != "Please select a valid document file (PDF, DOC, or DOCX)" {
		t.Errorf("message = %q", err.Error())
	}
	if repo.uploadCalls != 0 {
		t.Errorf("rejected upload reached the backend %d times", repo.uploadCalls)
	}
}

func TestUploadRejectsOversizeBeforeNetwork(t *testing.T) {
	repo := &fakeDocumentRepo{}
	docs := newDocumentUsecase(t, repo, authenticatedSession(t))

	_, err := docs.Upload(context.Background(), UploadInput{
		Title:       "Big",
		Filename:    "big.pdf",
		ContentType: "application/pdf",
		Data:        bytes.Repeat([]byte("a"), 11*1024*1024),
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if err.Error() != "File size exceeds 10MB limit" {
		t.Errorf("message = %q", err.Error())
	}
	if repo.uploadCalls != 0 {
		t.Errorf("rejected upload reached the backend %d times", repo.uploadCalls)
	}
}

func TestUploadRequiresTitle(t *testing.T) {
	repo := &fakeDocumentRepo{}
	docs := newDocumentUsecase(t, repo, authenticatedSession(t))

	_, err := docs.Upload(context.Background(), UploadInput{
		Filename:    "contract.pdf",
		ContentType: "application/pdf",
		Data:        []byte("pdf"),
	})
	if err == nil {
		t.Fatal("expected error for missing title")
	}
	if !IsPreconditionError(err) {
		t.Errorf("error type = %T, want PreconditionError", err)
	}
	if repo.uploadCalls != 0 {
		t.Error("missing title should fail before the backend is called")
	}
}

func TestUploadKeepsPostRefreshFailureVisible(t *testing.T) {
	created := sampleDocument("d9", entity.StatusDraft)
	repo := &fakeDocumentRepo{uploaded: &created, listErr: errors.New("boom")}
	docs := newDocumentUsecase(t, repo, authenticatedSession(t))

	doc, err := docs.Upload(context.Background(), UploadInput{
		Title:       "Contract",
		Filename:    "contract.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if doc == nil {
		t.Fatal("upload returned no document")
	}

	if docs.LastError() == "" {
		t.Error("post-upload refresh failure should stay visible via LastError")
	}
}

func TestRefreshStatusSplicesOnlyMatchingEntry(t *testing.T) {
	repo := &fakeDocumentRepo{
		documents: []entity.Document{
			sampleDocument("d1", entity.StatusSent),
			sampleDocument("d2", entity.StatusDraft),
		},
		statusResult: &entity.DocumentStatusResult{
			Status:  entity.StatusCompleted,
			Signers: []entity.Signer{{Name: "Bo", Email: "bo@example.com", Status: entity.StatusCompleted}},
		},
	}
	docs := newDocumentUsecase(t, repo, authenticatedSession(t))

	if err := docs.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	result, err := docs.RefreshStatus(context.Background(), "d1")
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if result.Status != entity.StatusCompleted {
		t.Errorf("result status = %q, want completed", result.Status)
	}

	for _, doc := range docs.Documents() {
		switch doc.ID {
		case "d1":
			if doc.Status != entity.StatusCompleted {
				t.Errorf("d1 status = %q, want completed", doc.Status)
			}
			if len(doc.Signers) != 1 {
				t.Errorf("d1 signers not adopted: %v", doc.Signers)
			}
		case "d2":
			if doc.Status != entity.StatusDraft {
				t.Errorf("d2 status = %q, refresh touched an unrelated entry", doc.Status)
			}
		}
	}
}

func TestRefreshStatusNotSentOnSentDocument(t *testing.T) {
	repo := &fakeDocumentRepo{
		documents: []entity.Document{sampleDocument("d1", entity.StatusSent)},
		statusErr: &entity.BackendError{StatusCode: 400, Message: "Document has not been sent for signing yet"},
	}
	docs := newDocumentUsecase(t, repo, authenticatedSession(t))

	if err := docs.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	_, err := docs.RefreshStatus(context.Background(), "d1")
	if !errors.Is(err, ErrResetRequired) {
		t.Fatalf("error = %v, want ErrResetRequired", err)
	}
}

func TestRefreshStatusNotSentOnDraftDocumentIsPlainError(t *testing.T) {
	repo := &fakeDocumentRepo{
		documents: []entity.Document{sampleDocument("d1", entity.StatusDraft)},
		statusErr: &entity.BackendError{StatusCode: 400, Message: "Document has not been sent for signing yet"},
	}
	docs := newDocumentUsecase(t, repo, authenticatedSession(t))

	if err := docs.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	_, err := docs.RefreshStatus(context.Background(), "d1")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrResetRequired) {
		t.Error("draft document should not trigger the reset escape hatch")
	}
}

func TestResetForcesDraft(t *testing.T) {
	repo := &fakeDocumentRepo{
		documents: []entity.Document{sampleDocument("d1", entity.StatusSent)},
	}
	docs := newDocumentUsecase(t, repo, authenticatedSession(t))

	if err := docs.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if err := docs.Reset(context.Background(), "d1"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	if repo.resetCalls != 1 {
		t.Errorf("reset endpoint called %d times, want 1", repo.resetCalls)
	}
	if got := docs.Documents()[0].Status; got != entity.StatusDraft {
		t.Errorf("status after reset = %q, want draft", got)
	}
	if docs.LastError() != "" {
		t.Errorf("reset should clear the error, got %q", docs.LastError())
	}
}

func TestCreateSigningRequestValidatesSigners(t *testing.T) {
	repo := &fakeDocumentRepo{}
	docs := newDocumentUsecase(t, repo, authenticatedSession(t))

	err := docs.CreateSigningRequest(context.Background(), "d1", nil)
	if err == nil {
		t.Error("expected error for empty signer list")
	}
	if !IsPreconditionError(err) {
		t.Errorf("error type = %T, want PreconditionError", err)
	}

	err = docs.CreateSigningRequest(context.Background(), "d1", []entity.SignerInput{{Name: "Bo"}})
	if err == nil {
		t.Error("expected error for signer without email")
	}
	if !IsPreconditionError(err) {
		t.Errorf("error type = %T, want PreconditionError", err)
	}

	if repo.signCalls != 0 {
		t.Errorf("invalid signer lists reached the backend %d times", repo.signCalls)
	}
}

func TestLastErrorIsSharedAcrossOperations(t *testing.T) {
	repo := &fakeDocumentRepo{
		statusErr: &entity.BackendError{StatusCode: 500, Message: "something broke"},
	}
	docs := newDocumentUsecase(t, repo, authenticatedSession(t))

	if _, err := docs.RefreshStatus(context.Background(), "d1"); err == nil {
		t.Fatal("expected error")
	}
	if docs.LastError() != "something broke" {
		t.Errorf("LastError = %q, want backend message", docs.LastError())
	}

	repo.statusErr = nil
	repo.statusResult = &entity.DocumentStatusResult{Status: entity.StatusSent}
	if _, err := docs.RefreshStatus(context.Background(), "d1"); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if docs.LastError() != "" {
		t.Errorf("next successful operation should clear the error, got %q", docs.LastError())
	}
}
