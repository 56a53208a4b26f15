package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	response "business_manager/internal/adapter/http/dto/response"
	"business_manager/internal/usecase"
	"business_manager/pkg"
)

// BillingPaymentHandler handles HTTP requests for invoice payments.
type BillingPaymentHandler struct {
	usecase usecase.IBillingPaymentUseCase
	logger  zerolog.Logger
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, logger zerolog.Logger) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, logger: logger}
}

// PayInvoice godoc
// @Summary  Pay an invoice through Mercado Pago
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    invoice_id  path      string                                true  "Invoice ID"
// @Param    payment     body      request.BillingPaymentCreateRequest  true  "Mercado Pago payment body, bare or wrapped in mp_payload"
// @Success  200         {object}  response.BillingPaymentResponse
// @Failure  400         {object}  pkg.HTTPError
// @Failure  409         {object}  pkg.HTTPError
// @Router   /payments/{invoice_id} [post]
func (h *BillingPaymentHandler) PayInvoice(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	mpPayload, err := readMPPayload(c)
	if err != nil {
		h.logger.Warn().Err(err).Str("invoice_id", invoiceID).Msg("invalid payment payload")
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.PayInvoice(c.Request.Context(), invoiceID, mpPayload)
	if err != nil {
		h.logger.Error().Err(err).Str("invoice_id", invoiceID).Msg("pay invoice failed")
		writeError(c, mapBillingPaymentError(err))
		return
	}
	h.logger.Info().Str("invoice_id", invoiceID).Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("invoice payment recorded")

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetLatestPayment godoc
// @Summary  Latest payment of an invoice
// @Tags     payments
// @Produce  json
// @Param    invoice_id  path      string  true  "Invoice ID"
// @Success  200         {object}  response.BillingPaymentResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /payments/{invoice_id} [get]
func (h *BillingPaymentHandler) GetLatestPayment(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), invoiceID)
	if err != nil {
		writeError(c, mapBillingPaymentError(err))
		return
	}
	if len(payments) == 0 {
		writeError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

// ListPayments godoc
// @Summary  All payment attempts of an invoice
// @Tags     payments
// @Produce  json
// @Param    invoice_id  path  string  true  "Invoice ID"
// @Success  200  {array}  response.BillingPaymentResponse
// @Router   /payments/{invoice_id}/history [get]
func (h *BillingPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		writeError(c, mapBillingPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayments(payments))
}

// GetPayment godoc
// @Summary  One payment of an invoice
// @Tags     payments
// @Produce  json
// @Param    invoice_id  path      string  true  "Invoice ID"
// @Param    payment_id  path      string  true  "Payment ID"
// @Success  200         {object}  response.BillingPaymentResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /payments/{invoice_id}/{payment_id} [get]
func (h *BillingPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err == nil && p.InvoiceID != c.Param("invoice_id") {
		err = usecase.ErrBillingPaymentNotFound
	}
	if err != nil {
		writeError(c, mapBillingPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(p))
}

// readMPPayload accepts either a bare Mercado Pago body or one wrapped in
// {"mp_payload": ...}. An empty body becomes "{}".
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInvoiceID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Invoice is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
