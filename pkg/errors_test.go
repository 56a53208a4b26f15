package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamo down")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "dynamo down")
	assert.Equal(t, HTTPError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}, err.ToHTTPError())

	simple := NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	assert.Nil(t, simple.Unwrap())
	assert.Equal(t, "DOCUMENT_NOT_FOUND: Document not found", simple.Error())
	assert.Equal(t, http.StatusNotFound, simple.HTTPStatus)
}
