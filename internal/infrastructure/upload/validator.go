package upload

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"hrbridge/internal/config"
)

// ValidationError is a client-side precondition failure. It never reaches
// the network; the message is shown to the user as-is.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// IsValidationError reports whether err is a client-side upload rejection.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var extensionTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Validator checks document uploads against the configured type and size
// limits before any network call is made.
type Validator struct {
	maxSize     int64
	sizeMessage string
	allowed     map[string]struct{}
	logger      *zap.Logger
}

func NewValidator(cfg *config.Config, logger *zap.Logger) *Validator {
	allowed := make(map[string]struct{}, len(cfg.Upload.AllowedTypes))
	for _, t := range cfg.Upload.AllowedTypes {
		allowed[t] = struct{}{}
	}

	return &Validator{
		maxSize:     int64(cfg.Upload.MaxSizeMB) * 1024 * 1024,
		sizeMessage: fmt.Sprintf("File size exceeds %dMB limit", cfg.Upload.MaxSizeMB),
		allowed:     allowed,
		logger:      logger,
	}
}

// Validate rejects unsupported or oversized files. The content type is
// taken from the request when present, else inferred from the filename
// extension.
func (v *Validator) Validate(filename, contentType string, size int64) error {
	resolved := contentType
	if resolved == "" {
		resolved = extensionTypes[strings.ToLower(filepath.Ext(filename))]
	}

	if _, ok := v.allowed[resolved]; !ok {
		v.logger.Debug("Rejected upload by content type",
			zap.String("filename", filename),
			zap.String("content_type", contentType),
		)
		return &ValidationError{msg: "Please select a valid document file (PDF, DOC, or DOCX)"}
	}

	if size > v.maxSize {
		v.logger.Debug("Rejected upload by size",
			zap.String("filename", filename),
			zap.Int64("size", size),
			zap.Int64("limit", v.maxSize),
		)
		return &ValidationError{msg: v.sizeMessage}
	}

	return nil
}
