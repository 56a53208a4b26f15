package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"business_manager/internal/adapter/http/handlers/mocks"
	"business_manager/internal/domain/entities"
	"business_manager/internal/domain/pricing"
	"business_manager/internal/usecase"
)

func newDraftRouter(t *testing.T) (*gin.Engine, *mocks.MockIDraftUseCase) {
	gin.SetMode(gin.TestMode)
	uc := mocks.NewMockIDraftUseCase(gomock.NewController(t))
	h := NewDraftHandler(uc, zerolog.Nop())

	r := gin.New()
	r.POST("/v1/drafts", h.OpenDraft)
	r.GET("/v1/drafts/:id", h.GetDraft)
	r.DELETE("/v1/drafts/:id", h.DiscardDraft)
	r.POST("/v1/drafts/:id/parts", h.AddPart)
	r.POST("/v1/drafts/:id/labor", h.AddLabor)
	r.PATCH("/v1/drafts/:id/items/:item_id", h.UpdateItem)
	r.DELETE("/v1/drafts/:id/items/:item_id", h.RemoveItem)
	r.PATCH("/v1/drafts/:id/markup", h.SetMarkup)
	r.POST("/v1/drafts/:id/load", h.LoadFromDocument)
	r.POST("/v1/drafts/:id/submit", h.SubmitDraft)
	return r, uc
}

func sampleDraftView(applied bool) entities.DraftView {
	a := pricing.NewAssembler(pricing.WithMarkup(decimal.NewFromInt(10)))
	a.AddPart(pricing.PartEntry{ID: "p1", Name: "Brake pad", UnitPrice: decimal.NewFromInt(100)}, decimal.NewFromInt(2))
	a.AddLabor(pricing.LaborEntry{ID: "l1", Name: "Mechanic", HourlyRate: decimal.NewFromInt(50)}, decimal.RequireFromString("1.5"))
	return entities.DraftView{ID: "d1", Kind: entities.DocumentKindQuote, Snapshot: a.Snapshot(), Applied: applied}
}

func decodeDraft(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestDraftHandler_OpenDraft(t *testing.T) {
	t.Run("new draft", func(t *testing.T) {
		r, uc := newDraftRouter(t)
		uc.EXPECT().Open(gomock.Any(), entities.DocumentKindQuote, "12.5").Return(sampleDraftView(true), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/drafts", bytes.NewBufferString(`{"kind":"quote","markup":12.5}`)))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeDraft(t, w)
		if body["total_amount"] != 295.0 || body["parts_total"] != 220.0 || body["labor_total"] != 75.0 {
			t.Fatalf("unexpected totals: %s", w.Body.String())
		}
		parts := body["parts"].([]any)
		if len(parts) != 1 || parts[0].(map[string]any)["base_price"] != 100.0 {
			t.Fatalf("unexpected parts: %v", parts)
		}
		labor := body["labor"].([]any)
		if _, ok := labor[0].(map[string]any)["base_price"]; ok {
			t.Fatalf("labor must not carry a base price: %v", labor)
		}
	})

	t.Run("edit existing document", func(t *testing.T) {
		r, uc := newDraftRouter(t)
		view := sampleDraftView(true)
		view.DocumentID = "doc-1"
		uc.EXPECT().Edit(gomock.Any(), "doc-1").Return(view, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/drafts", bytes.NewBufferString(`{"document_id":"doc-1"}`)))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if decodeDraft(t, w)["document_id"] != "doc-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		r, uc := newDraftRouter(t)
		uc.EXPECT().Open(gomock.Any(), entities.DocumentKind("receipt"), "").Return(entities.DraftView{}, usecase.ErrInvalidDocumentKind)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/drafts", bytes.NewBufferString(`{"kind":"receipt"}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		r, _ := newDraftRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/drafts", bytes.NewBufferString(`{`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDraftHandler_GetAndDiscard(t *testing.T) {
	r, uc := newDraftRouter(t)
	uc.EXPECT().Get(gomock.Any(), "missing").Return(entities.DraftView{}, usecase.ErrDraftNotFound)
	uc.EXPECT().Discard(gomock.Any(), "d1").Return(nil)
	uc.EXPECT().Get(gomock.Any(), "boom").Return(entities.DraftView{}, errors.New("store down"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/drafts/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/drafts/d1", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/drafts/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("store down")) {
		t.Fatalf("internal cause leaked: %s", w.Body.String())
	}
}

func TestDraftHandler_AddItems(t *testing.T) {
	r, uc := newDraftRouter(t)
	uc.EXPECT().AddPart(gomock.Any(), "d1", "p1", "2").Return(sampleDraftView(true), nil)
	uc.EXPECT().AddLabor(gomock.Any(), "d1", "l1", "abc").Return(sampleDraftView(false), nil)
	uc.EXPECT().AddPart(gomock.Any(), "gone", "p1", "1").Return(entities.DraftView{}, usecase.ErrDraftNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/drafts/d1/parts", bytes.NewBufferString(`{"part_id":"p1","quantity":2}`)))
	if w.Code != http.StatusOK || decodeDraft(t, w)["applied"] != true {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/drafts/d1/labor", bytes.NewBufferString(`{"labor_rate_id":"l1","hours":"abc"}`)))
	if w.Code != http.StatusOK || decodeDraft(t, w)["applied"] != false {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/drafts/gone/parts", bytes.NewBufferString(`{"part_id":"p1","quantity":"1"}`)))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/drafts/d1/parts", bytes.NewBufferString(`{"quantity":1}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without part_id, got %d", w.Code)
	}
}

func TestDraftHandler_UpdateItem(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		r, _ := newDraftRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/drafts/d1/items/i1", bytes.NewBufferString(`{}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quantity and price", func(t *testing.T) {
		r, uc := newDraftRouter(t)
		gomock.InOrder(
			uc.EXPECT().SetQuantity(gomock.Any(), "d1", "i1", "3").Return(sampleDraftView(true), nil),
			uc.EXPECT().SetUnitPrice(gomock.Any(), "d1", "i1", "-5").Return(sampleDraftView(false), nil),
		)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/drafts/d1/items/i1", bytes.NewBufferString(`{"quantity":3,"unit_price":-5}`)))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeDraft(t, w)["applied"] != false {
			t.Fatalf("a rejected price must report applied=false: %s", w.Body.String())
		}
	})

	t.Run("price only", func(t *testing.T) {
		r, uc := newDraftRouter(t)
		uc.EXPECT().SetUnitPrice(gomock.Any(), "d1", "i1", "80").Return(sampleDraftView(true), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/drafts/d1/items/i1", bytes.NewBufferString(`{"unit_price":"80"}`)))
		if w.Code != http.StatusOK || decodeDraft(t, w)["applied"] != true {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("quantity fails", func(t *testing.T) {
		r, uc := newDraftRouter(t)
		uc.EXPECT().SetQuantity(gomock.Any(), "d1", "i1", "1").Return(entities.DraftView{}, usecase.ErrDraftNotFound)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/drafts/d1/items/i1", bytes.NewBufferString(`{"quantity":1,"unit_price":2}`)))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDraftHandler_RemoveMarkupLoad(t *testing.T) {
	r, uc := newDraftRouter(t)
	uc.EXPECT().RemoveItem(gomock.Any(), "d1", "i1").Return(sampleDraftView(true), nil)
	uc.EXPECT().SetMarkup(gomock.Any(), "d1", "150").Return(sampleDraftView(true), nil)
	uc.EXPECT().LoadFromDocument(gomock.Any(), "d1", "q1", "10").Return(sampleDraftView(true), nil)

	for _, tc := range []struct {
		method, path, body string
	}{
		{http.MethodDelete, "/v1/drafts/d1/items/i1", ""},
		{http.MethodPatch, "/v1/drafts/d1/markup", `{"markup":150}`},
		{http.MethodPost, "/v1/drafts/d1/load", `{"source_document_id":"q1","markup":"10"}`},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body)))
		if w.Code != http.StatusOK {
			t.Fatalf("%s %s: expected 200, got %d", tc.method, tc.path, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/drafts/d1/load", bytes.NewBufferString(`{"markup":10}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without source_document_id, got %d", w.Code)
	}
}

func TestDraftHandler_SubmitDraft(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		r, _ := newDraftRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/drafts/d1/submit", bytes.NewBufferString(`{"customer":{"name":"Ana"},"date":"16/10/2026"}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeDraft(t, w)["code"] != "INVALID_DATE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing customer", func(t *testing.T) {
		r, uc := newDraftRouter(t)
		uc.EXPECT().Submit(gomock.Any(), "d1", gomock.Any()).Return(entities.Document{}, usecase.ErrInvalidCustomer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/drafts/d1/submit", bytes.NewBufferString(`{}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submitted", func(t *testing.T) {
		r, uc := newDraftRouter(t)
		uc.EXPECT().Submit(gomock.Any(), "d1", gomock.Any()).DoAndReturn(func(_ any, _ string, h entities.DocumentHeader) (entities.Document, error) {
			if h.Customer.Name != "Ana" || h.Date.Format("2006-01-02") != "2026-10-16" {
				t.Fatalf("unexpected header: %+v", h)
			}
			return entities.Document{
				ID:          "doc-1",
				Number:      "Q-2026-0001",
				Kind:        entities.DocumentKindQuote,
				Customer:    h.Customer,
				Status:      entities.DocumentStatusPending,
				TotalAmount: decimal.RequireFromString("295"),
			}, nil
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/drafts/d1/submit", bytes.NewBufferString(`{"customer":{"name":" Ana "},"date":"2026-10-16"}`)))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeDraft(t, w)
		if body["number"] != "Q-2026-0001" || body["total_amount"] != 295.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
