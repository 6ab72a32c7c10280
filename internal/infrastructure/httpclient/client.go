package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"hrbridge/internal/config"
	"hrbridge/internal/domain/entity"
	"hrbridge/internal/infrastructure/credential"
)

const (
	maxBodyLogLength = 500 // Maximum characters to log for body
	maxAuditBodySize = 10000
)

// APIClient is the single configured HTTP client every repository uses to
// reach the HR platform backend.
type APIClient interface {
	// Get performs a GET request with the session credential attached
	Get(ctx context.Context, path string, result interface{}) error
	// Post performs a JSON POST request with the session credential attached
	Post(ctx context.Context, path string, body interface{}, result interface{}) error
	// Delete performs a DELETE request with the session credential attached
	Delete(ctx context.Context, path string, result interface{}) error
	// PostMultipart performs a multipart/form-data POST request
	PostMultipart(ctx context.Context, path string, fields map[string]string, files map[string]FileUpload, result interface{}) error
	// URL composes an absolute backend URL without issuing a request
	URL(path string) string
}

// FileUpload represents a file to be uploaded
type FileUpload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// APILogSaver interface for saving API audit logs
type APILogSaver interface {
	Save(ctx context.Context, log *entity.APILog) error
}

type apiClient struct {
	client      *http.Client
	config      *config.Config
	baseURL     string
	creds       credential.Store
	apiLogSaver APILogSaver
	logger      *zap.Logger
}

func NewAPIClient(cfg *config.Config, creds credential.Store, apiLogSaver APILogSaver, logger *zap.Logger) APIClient {
	c := &apiClient{
		client: &http.Client{
			Timeout: cfg.Backend.Timeout,
		},
		config:      cfg,
		baseURL:     strings.TrimRight(cfg.Backend.BaseURL, "/"),
		creds:       creds,
		apiLogSaver: apiLogSaver,
		logger:      logger,
	}

	logger.Info("API client initialized",
		zap.String("base_url", c.baseURL),
		zap.String("auth_scheme", cfg.Backend.AuthScheme),
	)

	return c
}

func (c *apiClient) URL(path string) string {
	return c.baseURL + path
}

// truncateString truncates a string if it exceeds maxLength
func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength] + fmt.Sprintf("... [truncated, total %d chars]", len(s))
}

// logRequest logs the outbound request details
func (c *apiClient) logRequest(method, url string, body []byte) {
	var logBuilder strings.Builder

	logBuilder.WriteString("\n>>> [BACKEND-REQ]\n")
	logBuilder.WriteString(fmt.Sprintf("Method: %s\n", method))
	logBuilder.WriteString(fmt.Sprintf("URL: %s\n", url))
	logBuilder.WriteString(fmt.Sprintf("Auth-Scheme: %s\n", c.config.Backend.AuthScheme))

	if len(body) > 0 {
		logBuilder.WriteString(fmt.Sprintf("REQUEST BODY: %s\n", truncateString(string(body), maxBodyLogLength)))
	}

	c.logger.Info(logBuilder.String())
}

// logResponse logs the response details
func (c *apiClient) logResponse(statusCode int, statusText string, duration time.Duration, body []byte) {
	var logBuilder strings.Builder

	logBuilder.WriteString("\n>>> [BACKEND-RESPONSE]\n")
	logBuilder.WriteString(fmt.Sprintf("Status: %d %s\n", statusCode, statusText))
	logBuilder.WriteString(fmt.Sprintf("Duration: %s\n", duration))
	logBuilder.WriteString(fmt.Sprintf("Body: %s\n", truncateString(string(body), maxBodyLogLength)))

	c.logger.Info(logBuilder.String())
}

// saveAPILog appends the request/response pair to the audit trail
func (c *apiClient) saveAPILog(method, endpoint string, requestBody, responseBody []byte, statusCode int, duration time.Duration) {
	if c.apiLogSaver == nil {
		return
	}

	reqBodyStr := string(requestBody)
	if len(reqBodyStr) > maxAuditBodySize {
		reqBodyStr = reqBodyStr[:maxAuditBodySize] + "... [truncated]"
	}

	respBodyStr := string(responseBody)
	if len(respBodyStr) > maxAuditBodySize {
		respBodyStr = respBodyStr[:maxAuditBodySize] + "... [truncated]"
	}

	apiLog := &entity.APILog{
		Endpoint:     endpoint,
		Method:       method,
		RequestBody:  reqBodyStr,
		ResponseBody: respBodyStr,
		StatusCode:   statusCode,
		Duration:     duration.Milliseconds(),
		CreatedAt:    time.Now(),
	}

	// Save asynchronously to not block the request
	go func() {
		if err := c.apiLogSaver.Save(context.Background(), apiLog); err != nil {
			c.logger.Warn("Failed to save API log to database",
				zap.String("endpoint", endpoint),
				zap.Error(err),
			)
		}
	}()
}

// setAuthHeaders attaches the session credential per the configured scheme.
// A missing credential is not an error: the request goes out anonymous and
// the backend decides.
func (c *apiClient) setAuthHeaders(ctx context.Context, req *http.Request) {
	value, err := c.creds.Load(ctx)
	if err != nil {
		if !errors.Is(err, credential.ErrNotFound) {
			c.logger.Warn("Failed to load session credential", zap.Error(err))
		}
		return
	}

	if c.config.Backend.IsBearer() {
		req.Header.Set("Authorization", "Bearer "+value)
		return
	}
	req.AddCookie(&http.Cookie{Name: c.config.Session.CookieName, Value: value})
}

// captureCredential persists the backend session cookie when a response
// (re)issues it, so the session survives agent restarts.
func (c *apiClient) captureCredential(ctx context.Context, resp *http.Response) {
	if !c.config.Backend.IsCookie() {
		return
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name != c.config.Session.CookieName || cookie.Value == "" {
			continue
		}
		if err := c.creds.Save(ctx, cookie.Value); err != nil {
			c.logger.Warn("Failed to persist session cookie", zap.Error(err))
		}
		return
	}
}

// backendError turns a non-2xx response into a typed failure carrying the
// server-provided message when the body has one.
func backendError(statusCode int, body []byte) *entity.BackendError {
	message := "request failed"

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			message = payload.Error
		} else if payload.Message != "" {
			message = payload.Message
		}
	}

	return &entity.BackendError{StatusCode: statusCode, Message: message}
}

func (c *apiClient) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	fullURL := c.baseURL + path

	var bodyReader io.Reader
	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set default headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.setAuthHeaders(ctx, req)

	c.logRequest(method, fullURL, jsonBody)

	startTime := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	duration := time.Since(startTime)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logResponse(resp.StatusCode, resp.Status, duration, respBody)
	c.saveAPILog(method, fullURL, jsonBody, respBody, resp.StatusCode, duration)
	c.captureCredential(ctx, resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return backendError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

func (c *apiClient) Get(ctx context.Context, path string, result interface{}) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, result)
}

func (c *apiClient) Post(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.doRequest(ctx, http.MethodPost, path, body, result)
}

func (c *apiClient) Delete(ctx context.Context, path string, result interface{}) error {
	return c.doRequest(ctx, http.MethodDelete, path, nil, result)
}

// PostMultipart sends a multipart/form-data POST request
func (c *apiClient) PostMultipart(ctx context.Context, path string, fields map[string]string, files map[string]FileUpload, result interface{}) error {
	fullURL := c.baseURL + path

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	for fieldName, file := range files {
		part, err := writer.CreateFormFile(fieldName, file.Filename)
		if err != nil {
			return fmt.Errorf("failed to create form file %s: %w", fieldName, err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return fmt.Errorf("failed to write file content %s: %w", fieldName, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set content type with boundary
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	c.setAuthHeaders(ctx, req)

	// Build multipart body summary for logging
	var bodySummary strings.Builder
	bodySummary.WriteString("{fields: [")
	fieldKeys := make([]string, 0, len(fields))
	for k := range fields {
		fieldKeys = append(fieldKeys, k)
	}
	bodySummary.WriteString(strings.Join(fieldKeys, ", "))
	bodySummary.WriteString("], files: [")
	fileKeys := make([]string, 0, len(files))
	for k, f := range files {
		fileKeys = append(fileKeys, fmt.Sprintf("%s(%s, %d bytes)", k, f.Filename, len(f.Content)))
	}
	bodySummary.WriteString(strings.Join(fileKeys, ", "))
	bodySummary.WriteString("]}")

	c.logRequest(http.MethodPost, fullURL, []byte(bodySummary.String()))

	startTime := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	duration := time.Since(startTime)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logResponse(resp.StatusCode, resp.Status, duration, respBody)
	c.saveAPILog(http.MethodPost, fullURL, []byte(bodySummary.String()), respBody, resp.StatusCode, duration)
	c.captureCredential(ctx, resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return backendError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
