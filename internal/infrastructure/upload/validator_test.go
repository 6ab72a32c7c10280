package upload

import (
	"testing"

	"go.uber.org/zap"

	"hrbridge/internal/config"
)

func newTestValidator() *Validator {
	cfg := &config.Config{}
	cfg.Upload.MaxSizeMB = 10
	cfg.Upload.AllowedTypes = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	return NewValidator(cfg, zap.NewNop())
}

func TestValidateAcceptsDocumentTypes(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		filename    string
		contentType string
	}{
		{"contract.pdf", "application/pdf"},
		{"letter.doc", "application/msword"},
		{"offer.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}

	for _, tt := range tests {
		if err := v.Validate(tt.filename, tt.contentType, 1024); err != nil {
			t.Errorf("Validate(%q, %q) = %v, want nil", tt.filename, tt.contentType, err)
		}
	}
}

func TestValidateRejectsOtherTypes(t *testing.T) {
	v := newTestValidator()

	err := v.Validate("photo.png", "image/png", 1024)
	if err == nil {
		t.Fatal("expected rejection")
	}
	if !IsValidationError(err) {
		t.Errorf("error type = %T, want ValidationError", err)
	}
	if err.Error() != "Please select a valid document file (PDF, DOC, or DOCX)" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestValidateRejectsOversizeFile(t *testing.T) {
	v := newTestValidator()

	err := v.Validate("big.pdf", "application/pdf", 11*1024*1024)
	if err == nil {
		t.Fatal("expected rejection")
	}
	if err.Error() != "File size exceeds 10MB limit" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestValidateAcceptsExactlyAtLimit(t *testing.T) {
	v := newTestValidator()

	if err := v.Validate("edge.pdf", "application/pdf", 10*1024*1024); err != nil {
		t.Errorf("file at the limit rejected: %v", err)
	}
}

func TestValidateInfersTypeFromExtension(t *testing.T) {
	v := newTestValidator()

	if err := v.Validate("contract.PDF", "", 1024); err != nil {
		t.Errorf("extension fallback failed: %v", err)
	}
	if err := v.Validate("archive.zip", "", 1024); err == nil {
		t.Error("unknown extension with no content type should be rejected")
	}
}
