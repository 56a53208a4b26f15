package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	request "business_manager/internal/adapter/http/dto/request"
	response "business_manager/internal/adapter/http/dto/response"
	"business_manager/internal/usecase"
	"business_manager/pkg"
)

// CustomerHandler serves the customer registry.
type CustomerHandler struct {
	customers usecase.ICustomerUseCase
	logger    zerolog.Logger
}

func NewCustomerHandler(customers usecase.ICustomerUseCase, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, logger: logger}
}

// CreateCustomer godoc
// @Summary  Register a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    customer  body      request.CustomerProfileRequest  true  "Customer"
// @Success  201       {object}  response.CustomerProfileResponse
// @Failure  400       {object}  pkg.HTTPError
// @Router   /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	created, err := h.customers.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomerProfile(created))
}

// ListCustomers godoc
// @Summary  List customers, newest first
// @Tags     customers
// @Produce  json
// @Param    q    query  string  false  "Matches name, email or phone"
// @Success  200  {array}  response.CustomerProfileResponse
// @Router   /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerProfiles(customers))
}

// GetCustomer godoc
// @Summary  Get a customer
// @Tags     customers
// @Produce  json
// @Param    id   path      string  true  "Customer ID"
// @Success  200  {object}  response.CustomerProfileResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.customers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerProfile(customer))
}

// UpdateCustomer godoc
// @Summary  Update a customer's contact details
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    id        path      string                   true  "Customer ID"
// @Param    customer  body      request.CustomerProfileRequest  true  "Customer"
// @Success  200       {object}  response.CustomerProfileResponse
// @Failure  400       {object}  pkg.HTTPError
// @Failure  404       {object}  pkg.HTTPError
// @Router   /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	updated, err := h.customers.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerProfile(updated))
}

// DeleteCustomer godoc
// @Summary  Delete a customer and every document issued to them
// @Tags     customers
// @Produce  json
// @Param    id   path      string  true  "Customer ID"
// @Success  200  {object}  response.CustomerDeletedResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id := c.Param("id")
	removed, err := h.customers.Delete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CustomerDeletedResponse{ID: id, DocumentsRemoved: removed})
}

func (h *CustomerHandler) fail(c *gin.Context, err error) {
	var appErr *pkg.AppError
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidCustomerName):
		appErr = errInvalidRequest
	case errors.Is(err, usecase.ErrCustomerNotFound):
		appErr = pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		appErr = mapDocumentError(err)
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("customer request failed")
	}
	writeError(c, appErr)
}
