package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	request "business_manager/internal/adapter/http/dto/request"
	response "business_manager/internal/adapter/http/dto/response"
	"business_manager/internal/domain/entities"
	"business_manager/internal/usecase"
)

// DocumentHandler serves stored quotes, invoices and proposals.
type DocumentHandler struct {
	documents usecase.IDocumentUseCase
	exports   usecase.IExportUseCase
	logger    zerolog.Logger
}

func NewDocumentHandler(documents usecase.IDocumentUseCase, exports usecase.IExportUseCase, logger zerolog.Logger) *DocumentHandler {
	return &DocumentHandler{documents: documents, exports: exports, logger: logger}
}

// ListDocuments godoc
// @Summary  List documents of a kind, newest first
// @Tags     documents
// @Produce  json
// @Param    kind  query  string  true  "quote, invoice or proposal"
// @Success  200   {array}   response.DocumentSummaryResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	docs, err := h.documents.ListByKind(c.Request.Context(), entities.DocumentKind(c.Query("kind")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

// GetDocument godoc
// @Summary  Get a document
// @Tags     documents
// @Produce  json
// @Param    id   path      string  true  "Document ID"
// @Success  200  {object}  response.DocumentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.documents.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// UpdateDocument godoc
// @Summary  Replace a document's header and items
// @Tags     documents
// @Accept   json
// @Produce  json
// @Param    id        path      string                         true  "Document ID"
// @Param    document  body      request.UpdateDocumentRequest  true  "Document"
// @Success  200       {object}  response.DocumentResponse
// @Failure  400       {object}  pkg.HTTPError
// @Router   /documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	var payload request.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	header, err := payload.ToHeader()
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}
	items, err := payload.ToPayload()
	if err != nil {
		writeError(c, errInvalidAmount)
		return
	}

	doc, err := h.documents.Update(c.Request.Context(), c.Param("id"), header, items)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// DeleteDocument godoc
// @Summary  Delete a document
// @Tags     documents
// @Param    id   path  string  true  "Document ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.documents.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateStatus godoc
// @Summary  Move a document through its lifecycle
// @Tags     documents
// @Accept   json
// @Produce  json
// @Param    id      path      string                         true  "Document ID"
// @Param    status  body      request.DocumentStatusRequest  true  "Status"
// @Success  200     {object}  response.DocumentResponse
// @Failure  400     {object}  pkg.HTTPError
// @Router   /documents/{id}/status [patch]
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	var payload request.DocumentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	doc, err := h.documents.UpdateStatus(c.Request.Context(), c.Param("id"), entities.DocumentStatus(payload.Status))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// ConvertToInvoice godoc
// @Summary  Bill an accepted quote
// @Tags     documents
// @Accept   json
// @Produce  json
// @Param    id      path      string                       true   "Quote ID"
// @Param    markup  body      request.ConvertQuoteRequest  false  "Markup override"
// @Success  201     {object}  response.DocumentResponse
// @Failure  409     {object}  pkg.HTTPError
// @Router   /documents/{id}/invoice [post]
func (h *DocumentHandler) ConvertToInvoice(c *gin.Context) {
	var payload request.ConvertQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidRequest)
		return
	}
	markup, err := payload.MarkupPercent()
	if err != nil {
		writeError(c, errInvalidAmount)
		return
	}

	invoice, err := h.documents.ConvertQuoteToInvoice(c.Request.Context(), c.Param("id"), markup)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDocument(invoice))
}

// ExportDocument godoc
// @Summary  Download a document as csv, pdf or xlsx
// @Tags     documents
// @Produce  octet-stream
// @Param    id      path   string  true  "Document ID"
// @Param    format  query  string  true  "csv, pdf or xlsx"
// @Success  200
// @Failure  400  {object}  pkg.HTTPError
// @Router   /documents/{id}/export [get]
func (h *DocumentHandler) ExportDocument(c *gin.Context) {
	format, ok := entities.ParseExportFormat(c.Query("format"))
	if !ok {
		h.fail(c, usecase.ErrInvalidExportFormat)
		return
	}
	file, err := h.exports.ExportDocument(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		h.fail(c, err)
		return
	}
	sendFile(c, file)
}

// ExportList godoc
// @Summary  Download the list of documents of a kind
// @Tags     documents
// @Produce  octet-stream
// @Param    kind    query  string  true  "quote, invoice or proposal"
// @Param    format  query  string  true  "csv, pdf or xlsx"
// @Success  200
// @Failure  400  {object}  pkg.HTTPError
// @Router   /documents/export [get]
func (h *DocumentHandler) ExportList(c *gin.Context) {
	format, ok := entities.ParseExportFormat(c.Query("format"))
	if !ok {
		h.fail(c, usecase.ErrInvalidExportFormat)
		return
	}
	file, err := h.exports.ExportList(c.Request.Context(), entities.DocumentKind(c.Query("kind")), format)
	if err != nil {
		h.fail(c, err)
		return
	}
	sendFile(c, file)
}

func sendFile(c *gin.Context, file entities.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

func (h *DocumentHandler) fail(c *gin.Context, err error) {
	appErr := mapDocumentError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("document request failed")
	}
	writeError(c, appErr)
}
