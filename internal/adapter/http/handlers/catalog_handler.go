package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "business_manager/internal/adapter/http/dto/request"
	response "business_manager/internal/adapter/http/dto/response"
	"business_manager/internal/adapter/importer"
	"business_manager/internal/domain/entities"
	"business_manager/internal/usecase"
	"business_manager/pkg"
)

// CatalogHandler serves parts and labor rates.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// CreatePart godoc
// @Summary  Create a catalog part
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    part  body      request.PartRequest  true  "Part"
// @Success  201   {object}  response.PartResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /parts [post]
func (h *CatalogHandler) CreatePart(c *gin.Context) {
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	part, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidAmount)
		return
	}

	created, err := h.usecase.CreatePart(c.Request.Context(), part)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPart(created))
}

// UpdatePart godoc
// @Summary  Update a catalog part
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    id    path      string               true  "Part ID"
// @Param    part  body      request.PartRequest  true  "Part"
// @Success  200   {object}  response.PartResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /parts/{id} [put]
func (h *CatalogHandler) UpdatePart(c *gin.Context) {
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	part, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidAmount)
		return
	}

	updated, err := h.usecase.UpdatePart(c.Request.Context(), c.Param("id"), part)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPart(updated))
}

// DeletePart godoc
// @Summary  Delete a catalog part
// @Tags     catalog
// @Param    id   path  string  true  "Part ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /parts/{id} [delete]
func (h *CatalogHandler) DeletePart(c *gin.Context) {
	if err := h.usecase.DeletePart(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportParts godoc
// @Summary  Import parts from a CSV or XLSX sheet
// @Tags     catalog
// @Accept   multipart/form-data
// @Produce  json
// @Param    file  formData  file  true  "Sheet with name and price columns"
// @Success  200   {object}  response.ImportResultResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /parts/import [post]
func (h *CatalogHandler) ImportParts(c *gin.Context) {
	table, ok := readUploadedTable(c)
	if !ok {
		return
	}
	result, err := h.usecase.ImportParts(c.Request.Context(), table)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromImportResult(result))
}

// ListParts godoc
// @Summary  List parts, optionally filtered by brand and category
// @Tags     catalog
// @Produce  json
// @Param    brand     query  string  false  "Brand"
// @Param    category  query  string  false  "Category"
// @Success  200  {array}  response.PartResponse
// @Router   /parts [get]
func (h *CatalogHandler) ListParts(c *gin.Context) {
	filter := entities.PartFilter{Brand: c.Query("brand"), Category: c.Query("category")}
	parts, err := h.usecase.ListParts(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromParts(parts))
}

// GetPart godoc
// @Summary  Get a part
// @Tags     catalog
// @Produce  json
// @Param    id   path      string  true  "Part ID"
// @Success  200  {object}  response.PartResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /parts/{id} [get]
func (h *CatalogHandler) GetPart(c *gin.Context) {
	part, err := h.usecase.GetPart(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPart(part))
}

// ListBrands godoc
// @Summary  List part brands
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  string
// @Router   /parts/brands [get]
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.usecase.ListBrands(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, brands)
}

// ListCategories godoc
// @Summary  List part categories of a brand
// @Tags     catalog
// @Produce  json
// @Param    brand  query  string  false  "Brand"
// @Success  200  {array}  string
// @Router   /parts/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.usecase.ListCategories(c.Request.Context(), c.Query("brand"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateLaborRate godoc
// @Summary  Create a labor rate
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    labor  body      request.LaborRateRequest  true  "Labor rate"
// @Success  201    {object}  response.LaborRateResponse
// @Failure  400    {object}  pkg.HTTPError
// @Router   /labor [post]
func (h *CatalogHandler) CreateLaborRate(c *gin.Context) {
	var payload request.LaborRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	rate, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidAmount)
		return
	}

	created, err := h.usecase.CreateLaborRate(c.Request.Context(), rate)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLaborRate(created))
}

// UpdateLaborRate godoc
// @Summary  Update a labor rate
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    id     path      string                    true  "Labor rate ID"
// @Param    labor  body      request.LaborRateRequest  true  "Labor rate"
// @Success  200    {object}  response.LaborRateResponse
// @Failure  400    {object}  pkg.HTTPError
// @Failure  404    {object}  pkg.HTTPError
// @Router   /labor/{id} [put]
func (h *CatalogHandler) UpdateLaborRate(c *gin.Context) {
	var payload request.LaborRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	rate, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidAmount)
		return
	}

	updated, err := h.usecase.UpdateLaborRate(c.Request.Context(), c.Param("id"), rate)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLaborRate(updated))
}

// DeleteLaborRate godoc
// @Summary  Delete a labor rate
// @Tags     catalog
// @Param    id   path  string  true  "Labor rate ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /labor/{id} [delete]
func (h *CatalogHandler) DeleteLaborRate(c *gin.Context) {
	if err := h.usecase.DeleteLaborRate(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportLaborRates godoc
// @Summary  Import labor rates from a CSV or XLSX sheet
// @Tags     catalog
// @Accept   multipart/form-data
// @Produce  json
// @Param    file  formData  file  true  "Sheet with name and hourly_rate columns"
// @Success  200   {object}  response.ImportResultResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /labor/import [post]
func (h *CatalogHandler) ImportLaborRates(c *gin.Context) {
	table, ok := readUploadedTable(c)
	if !ok {
		return
	}
	result, err := h.usecase.ImportLaborRates(c.Request.Context(), table)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromImportResult(result))
}

// ListLaborRates godoc
// @Summary  List labor rates
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  response.LaborRateResponse
// @Router   /labor [get]
func (h *CatalogHandler) ListLaborRates(c *gin.Context) {
	rates, err := h.usecase.ListLaborRates(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLaborRates(rates))
}

// GetLaborRate godoc
// @Summary  Get a labor rate
// @Tags     catalog
// @Produce  json
// @Param    id   path      string  true  "Labor rate ID"
// @Success  200  {object}  response.LaborRateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /labor/{id} [get]
func (h *CatalogHandler) GetLaborRate(c *gin.Context) {
	rate, err := h.usecase.GetLaborRate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLaborRate(rate))
}

// readUploadedTable reads the "file" form field. It writes the error
// response itself and reports whether a table was read.
func readUploadedTable(c *gin.Context) (entities.Table, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, errInvalidRequest)
		return entities.Table{}, false
	}
	if fh.Size > importer.MaxUploadBytes {
		writeError(c, errUploadTooLarge)
		return entities.Table{}, false
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, errInvalidFile)
		return entities.Table{}, false
	}
	defer f.Close()

	table, err := importer.ReadTable(fh.Filename, f)
	if err != nil {
		writeError(c, pkg.NewDomainError("INVALID_FILE", err.Error(), err, http.StatusBadRequest))
		return entities.Table{}, false
	}
	return table, true
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrImportMissingColumn):
		return pkg.NewDomainError("MISSING_COLUMN", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCatalogID), errors.Is(err, usecase.ErrInvalidCatalogName):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidCatalogRate):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "Price must not be negative", http.StatusBadRequest)
	default:
		return mapDocumentError(err)
	}
}
