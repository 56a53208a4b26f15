package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"business_manager/internal/usecase"
	"business_manager/pkg"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidAmount  = pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be a number", http.StatusBadRequest)
	errInvalidDate    = pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must be YYYY-MM-DD", http.StatusBadRequest)
	errInvalidFile    = pkg.NewDomainErrorSimple("INVALID_FILE", "File could not be read", http.StatusBadRequest)
	errUploadTooLarge = pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File must not exceed 5 MB", http.StatusRequestEntityTooLarge)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapDocumentError covers the errors shared by the document, draft and
// export routes.
func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentID), errors.Is(err, usecase.ErrInvalidDraftID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidDocumentKind):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT_KIND", "Kind must be quote, invoice or proposal", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDocumentStatus):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT_STATUS", "Status not allowed for this document", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDocumentItems):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT_ITEMS", "Items must have a positive quantity and a non-negative price", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER", "Customer is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidExportFormat):
		return pkg.NewDomainErrorSimple("INVALID_EXPORT_FORMAT", "Format must be csv, pdf or xlsx", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAQuote):
		return pkg.NewDomainErrorSimple("NOT_A_QUOTE", "Only quotes can be converted to invoices", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Quote not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLaborRateNotFound):
		return pkg.NewDomainErrorSimple("LABOR_RATE_NOT_FOUND", "Labor rate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
