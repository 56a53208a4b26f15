package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	request "business_manager/internal/adapter/http/dto/request"
	response "business_manager/internal/adapter/http/dto/response"
	"business_manager/internal/domain/entities"
	"business_manager/internal/usecase"
)

// DraftHandler exposes the document form editor. Every edit answers with the
// full recomputed form state.
type DraftHandler struct {
	usecase usecase.IDraftUseCase
	logger  zerolog.Logger
}

func NewDraftHandler(uc usecase.IDraftUseCase, logger zerolog.Logger) *DraftHandler {
	return &DraftHandler{usecase: uc, logger: logger}
}

// OpenDraft godoc
// @Summary  Open a draft for a new document, or over an existing one
// @Tags     drafts
// @Accept   json
// @Produce  json
// @Param    draft  body      request.OpenDraftRequest  true  "Draft"
// @Success  201    {object}  response.DraftResponse
// @Failure  400    {object}  pkg.HTTPError
// @Router   /drafts [post]
func (h *DraftHandler) OpenDraft(c *gin.Context) {
	var payload request.OpenDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	var (
		view entities.DraftView
		err  error
	)
	if payload.DocumentID != "" {
		view, err = h.usecase.Edit(c.Request.Context(), payload.DocumentID)
	} else {
		view, err = h.usecase.Open(c.Request.Context(), entities.DocumentKind(payload.Kind), payload.Markup.String())
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDraft(view))
}

// GetDraft godoc
// @Summary  Get a draft
// @Tags     drafts
// @Produce  json
// @Param    id   path      string  true  "Draft ID"
// @Success  200  {object}  response.DraftResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /drafts/{id} [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, view, err)
}

// DiscardDraft godoc
// @Summary  Discard a draft
// @Tags     drafts
// @Param    id   path  string  true  "Draft ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /drafts/{id} [delete]
func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPart godoc
// @Summary  Add a catalog part to a draft
// @Tags     drafts
// @Accept   json
// @Produce  json
// @Param    id    path      string                  true  "Draft ID"
// @Param    item  body      request.AddPartRequest  true  "Part"
// @Success  200   {object}  response.DraftResponse
// @Router   /drafts/{id}/parts [post]
func (h *DraftHandler) AddPart(c *gin.Context) {
	var payload request.AddPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	view, err := h.usecase.AddPart(c.Request.Context(), c.Param("id"), payload.PartID, payload.Quantity.String())
	h.respond(c, view, err)
}

// AddLabor godoc
// @Summary  Add a labor line to a draft
// @Tags     drafts
// @Accept   json
// @Produce  json
// @Param    id    path      string                   true  "Draft ID"
// @Param    item  body      request.AddLaborRequest  true  "Labor"
// @Success  200   {object}  response.DraftResponse
// @Router   /drafts/{id}/labor [post]
func (h *DraftHandler) AddLabor(c *gin.Context) {
	var payload request.AddLaborRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	view, err := h.usecase.AddLabor(c.Request.Context(), c.Param("id"), payload.LaborRateID, payload.Hours.String())
	h.respond(c, view, err)
}

// RemoveItem godoc
// @Summary  Remove a line item from a draft
// @Tags     drafts
// @Produce  json
// @Param    id       path      string  true  "Draft ID"
// @Param    item_id  path      string  true  "Item ID"
// @Success  200      {object}  response.DraftResponse
// @Router   /drafts/{id}/items/{item_id} [delete]
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	view, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	h.respond(c, view, err)
}

// UpdateItem godoc
// @Summary  Change a line item's quantity and/or unit price
// @Tags     drafts
// @Accept   json
// @Produce  json
// @Param    id       path      string                     true  "Draft ID"
// @Param    item_id  path      string                     true  "Item ID"
// @Param    item     body      request.UpdateItemRequest  true  "Changes"
// @Success  200      {object}  response.DraftResponse
// @Router   /drafts/{id}/items/{item_id} [patch]
func (h *DraftHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil || (payload.Quantity == nil && payload.UnitPrice == nil) {
		writeError(c, errInvalidRequest)
		return
	}

	ctx := c.Request.Context()
	id, itemID := c.Param("id"), c.Param("item_id")
	applied := true
	var (
		view entities.DraftView
		err  error
	)
	if payload.Quantity != nil {
		view, err = h.usecase.SetQuantity(ctx, id, itemID, payload.Quantity.String())
		if err != nil {
			h.fail(c, err)
			return
		}
		applied = view.Applied
	}
	if payload.UnitPrice != nil {
		view, err = h.usecase.SetUnitPrice(ctx, id, itemID, payload.UnitPrice.String())
		if err != nil {
			h.fail(c, err)
			return
		}
		applied = applied && view.Applied
	}
	view.Applied = applied
	c.JSON(http.StatusOK, response.FromDraft(view))
}

// SetMarkup godoc
// @Summary  Set the draft markup percent (clamped to 0..100)
// @Tags     drafts
// @Accept   json
// @Produce  json
// @Param    id      path      string                 true  "Draft ID"
// @Param    markup  body      request.MarkupRequest  true  "Markup"
// @Success  200     {object}  response.DraftResponse
// @Router   /drafts/{id}/markup [patch]
func (h *DraftHandler) SetMarkup(c *gin.Context) {
	var payload request.MarkupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	view, err := h.usecase.SetMarkup(c.Request.Context(), c.Param("id"), payload.Markup.String())
	h.respond(c, view, err)
}

// LoadFromDocument godoc
// @Summary  Replace the draft items with a copy of another document's items
// @Tags     drafts
// @Accept   json
// @Produce  json
// @Param    id      path      string                    true  "Draft ID"
// @Param    source  body      request.LoadDraftRequest  true  "Source"
// @Success  200     {object}  response.DraftResponse
// @Router   /drafts/{id}/load [post]
func (h *DraftHandler) LoadFromDocument(c *gin.Context) {
	var payload request.LoadDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	view, err := h.usecase.LoadFromDocument(c.Request.Context(), c.Param("id"), payload.SourceDocumentID, payload.Markup.String())
	h.respond(c, view, err)
}

// SubmitDraft godoc
// @Summary  Persist the draft as a document
// @Tags     drafts
// @Accept   json
// @Produce  json
// @Param    id      path      string                         true  "Draft ID"
// @Param    header  body      request.DocumentHeaderRequest  true  "Header"
// @Success  200     {object}  response.DocumentResponse
// @Failure  400     {object}  pkg.HTTPError
// @Router   /drafts/{id}/submit [post]
func (h *DraftHandler) SubmitDraft(c *gin.Context) {
	var payload request.DocumentHeaderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	header, err := payload.ToHeader()
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}

	doc, err := h.usecase.Submit(c.Request.Context(), c.Param("id"), header)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func (h *DraftHandler) respond(c *gin.Context, view entities.DraftView, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(view))
}

func (h *DraftHandler) fail(c *gin.Context, err error) {
	appErr := mapDocumentError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("draft_id", c.Param("id")).Msg("draft request failed")
	}
	writeError(c, appErr)
}
