package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"business_manager/internal/adapter/http/handlers/mocks"
	"business_manager/internal/domain/entities"
	"business_manager/internal/usecase"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIBillingPaymentUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
	h := NewBillingPaymentHandler(uc, zerolog.Nop())

	r := gin.New()
	r.POST("/v1/payments/:invoice_id", h.PayInvoice)
	r.GET("/v1/payments/:invoice_id", h.GetLatestPayment)
	r.GET("/v1/payments/:invoice_id/history", h.ListPayments)
	r.GET("/v1/payments/:invoice_id/:payment_id", h.GetPayment)
	return r, uc
}

func TestBillingPaymentHandler_PayInvoice(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/inv-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("null mp_payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/inv-1", bytes.NewBufferString(`{"mp_payload":null}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("body read error", func(t *testing.T) {
		r, _ := newPaymentRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/inv-1", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invoice not payable", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().PayInvoice(gomock.Any(), "inv-1", gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrInvoiceNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/inv-1", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success unwraps mp_payload", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		now := time.Now().UTC()
		uc.EXPECT().PayInvoice(gomock.Any(), "inv-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, payload json.RawMessage) (entities.BillingPayment, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil || body["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %s", payload)
				}
				return entities.BillingPayment{ID: "pay-1", InvoiceID: "inv-1", Date: now, Status: entities.PaymentStatusApproved}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/inv-1", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["invoice_id"] != "inv-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBillingPaymentHandler_GetLatestPayment(t *testing.T) {
	t.Run("list error", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(nil, usecase.ErrInvalidPaymentInvoiceID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/inv-1", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.BillingPayment{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/inv-1", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns latest", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.BillingPayment{
			{ID: "pay-old", InvoiceID: "inv-1", Date: old, Status: entities.PaymentStatusDenied},
			{ID: "pay-new", InvoiceID: "inv-1", Date: old.Add(time.Hour), Status: entities.PaymentStatusApproved},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/inv-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-new" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBillingPaymentHandler_HistoryAndGet(t *testing.T) {
	t.Run("history", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.BillingPayment{{ID: "a"}, {ID: "b"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/inv-1/history", nil))

		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 2 {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("payment of another invoice", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.BillingPayment{ID: "pay-1", InvoiceID: "inv-2"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/inv-1/pay-1", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("payment found", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.BillingPayment{ID: "pay-1", InvoiceID: "inv-1"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/inv-1/pay-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapBillingPaymentError(t *testing.T) {
	cases := map[error]int{
		usecase.ErrInvalidMPPayload:               http.StatusBadRequest,
		usecase.ErrPaymentGatewayCustomerNotFound: http.StatusBadRequest,
		usecase.ErrPaymentGatewayInvalidUsers:     http.StatusBadRequest,
		usecase.ErrPaymentGatewayUnauthorized:     http.StatusUnauthorized,
		usecase.ErrPaymentGatewayNotConfigured:    http.StatusServiceUnavailable,
		usecase.ErrDocumentNotFound:               http.StatusNotFound,
		usecase.ErrInvoiceNotPayable:              http.StatusConflict,
		usecase.ErrBillingPaymentNotFound:         http.StatusNotFound,
		errors.New("boom"):                        http.StatusInternalServerError,
	}
	for err, want := range cases {
		if got := mapBillingPaymentError(err).HTTPStatus; got != want {
			t.Fatalf("%v: expected %d, got %d", err, want, got)
		}
	}
}
