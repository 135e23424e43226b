package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hostelerp/internal/auth"
	"hostelerp/internal/errors"
	"hostelerp/internal/model"
	"hostelerp/internal/service"
)

// DocumentHandler handles document endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
	guard           *auth.Guard
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(documentService service.DocumentService, guard *auth.Guard) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, guard: guard}
}

// UploadDocumentRequest represents uploaded document metadata.
type UploadDocumentRequest struct {
	DocType  string `json:"doc_type" validate:"required"`
	Filename string `json:"filename" validate:"required"`
}

// VerifyDocumentRequest represents an admin verification decision.
type VerifyDocumentRequest struct {
	Status  string `json:"status" validate:"required"`
	Comment string `json:"comment"`
}

// Upload godoc
// @Summary Register an uploaded document
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UploadDocumentRequest true "Document metadata"
// @Success 201 {object} model.Document
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /documents [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req UploadDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc, err := h.documentService.Upload(c.Request().Context(), user, service.UploadDocumentInput{
		DocType:  req.DocType,
		Filename: req.Filename,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, doc)
}

// My godoc
// @Summary List the caller's documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Document
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /documents/my [get]
func (h *DocumentHandler) My(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	docs, err := h.documentService.MyDocuments(c.Request().Context(), user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, docs)
}

// ByUser godoc
// @Summary List a student's documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param username path string true "Student username"
// @Success 200 {array} model.Document
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /documents/by-user/{username} [get]
func (h *DocumentHandler) ByUser(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	docs, err := h.documentService.DocumentsByUser(c.Request().Context(), user, c.Param("username"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, docs)
}

// Verify godoc
// @Summary Verify or reject a document
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Param request body VerifyDocumentRequest true "Decision"
// @Success 200 {object} model.Document
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /documents/{id}/verify [post]
func (h *DocumentHandler) Verify(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid document ID",
			Code:  "INVALID_UUID",
		})
	}

	var req VerifyDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc, err := h.documentService.Verify(c.Request().Context(), user, id, service.VerifyDocumentInput{
		Status:  model.DocumentStatus(req.Status),
		Comment: req.Comment,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, doc)
}
