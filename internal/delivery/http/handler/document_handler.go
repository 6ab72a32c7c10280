package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"hrbridge/internal/domain/entity"
	"hrbridge/internal/usecase"
)

type DocumentHandler struct {
	documents usecase.DocumentUsecase
	logger    *zap.Logger
}

func NewDocumentHandler(documents usecase.DocumentUsecase, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
		logger:    logger,
	}
}

type signingRequestBody struct {
	Signers []entity.SignerInput `json:"signers"`
}

// List returns the cached document list, refreshing it first.
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.documents.Fetch(ctx); err != nil {
		h.logger.Error("Failed to fetch documents", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(h.documents.Documents(), "Documents retrieved successfully"))
}

// Upload accepts a multipart document upload and forwards it.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	ctx := c.UserContext()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Please select a file to upload"),
		)
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(
			entity.NewErrorResponse("INTERNAL_ERROR", "Failed to read uploaded file"),
		)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(
			entity.NewErrorResponse("INTERNAL_ERROR", "Failed to read uploaded file"),
		)
	}

	document, err := h.documents.Upload(ctx, usecase.UploadInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		h.logger.Error("Failed to upload document", zap.Error(err))
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(
		entity.NewSuccessResponse(document, "Document uploaded successfully"),
	)
}

// Get returns one document's details.
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	document, err := h.documents.Get(ctx, c.Params("id"))
	if err != nil {
		h.logger.Error("Failed to get document", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(document, "Document retrieved successfully"))
}

// RefreshStatus adopts the backend's status and signers for one document.
func (h *DocumentHandler) RefreshStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	result, err := h.documents.RefreshStatus(ctx, c.Params("id"))
	if err != nil {
		h.logger.Error("Failed to refresh document status", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(result, "Document status refreshed"))
}

// Reset forces a document back to draft.
func (h *DocumentHandler) Reset(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.documents.Reset(ctx, c.Params("id")); err != nil {
		h.logger.Error("Failed to reset document", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(nil, "Document reset successfully"))
}

// CreateSigningRequest posts the signer list for a document.
func (h *DocumentHandler) CreateSigningRequest(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req signingRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Invalid request body"),
		)
	}

	if err := h.documents.CreateSigningRequest(ctx, c.Params("id"), req.Signers); err != nil {
		h.logger.Error("Failed to create signing request", zap.Error(err))
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(
		entity.NewSuccessResponse(nil, "Signing request created successfully"),
	)
}

// SigningURL returns the one-time signing URL for a signer.
func (h *DocumentHandler) SigningURL(c *fiber.Ctx) error {
	ctx := c.UserContext()

	email := c.Params("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Signer email is required"),
		)
	}

	signingURL, err := h.documents.SigningURL(ctx, c.Params("id"), email)
	if err != nil {
		h.logger.Error("Failed to get signing URL", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(fiber.Map{
		"signingUrl": signingURL,
	}, "Signing URL retrieved successfully"))
}

// Download hands the caller off to the backend's download endpoint.
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	return c.Redirect(h.documents.DownloadURL(c.Params("id")), fiber.StatusFound)
}

// ZohoStatus reports whether the e-signature provider is connected.
func (h *DocumentHandler) ZohoStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	connected, err := h.documents.ZohoStatus(ctx)
	if err != nil {
		h.logger.Error("Failed to check Zoho status", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(fiber.Map{
		"zohoAuthenticated": connected,
	}, "Zoho status retrieved"))
}

// DisconnectZoho disconnects the e-signature provider and returns the URL
// for connecting a different account.
func (h *DocumentHandler) DisconnectZoho(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.documents.DisconnectZoho(ctx); err != nil {
		h.logger.Error("Failed to disconnect Zoho", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(fiber.Map{
		"reconnectUrl": h.documents.ZohoReconnectURL(),
	}, "Disconnected from Zoho successfully"))
}

// ZohoConnect hands the caller off to the provider connect flow.
func (h *DocumentHandler) ZohoConnect(c *fiber.Ctx) error {
	return c.Redirect(h.documents.ZohoConnectURL(), fiber.StatusFound)
}
