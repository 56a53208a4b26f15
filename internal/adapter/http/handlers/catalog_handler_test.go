package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"business_manager/internal/adapter/http/handlers/mocks"
	"business_manager/internal/domain/entities"
	"business_manager/internal/usecase"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *mocks.MockICatalogUseCase) {
	gin.SetMode(gin.TestMode)
	uc := mocks.NewMockICatalogUseCase(gomock.NewController(t))
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.POST("/v1/parts", h.CreatePart)
	r.GET("/v1/parts", h.ListParts)
	r.GET("/v1/parts/brands", h.ListBrands)
	r.GET("/v1/parts/categories", h.ListCategories)
	r.GET("/v1/parts/:id", h.GetPart)
	r.PUT("/v1/parts/:id", h.UpdatePart)
	r.DELETE("/v1/parts/:id", h.DeletePart)
	r.POST("/v1/parts/import", h.ImportParts)
	r.POST("/v1/labor", h.CreateLaborRate)
	r.GET("/v1/labor", h.ListLaborRates)
	r.GET("/v1/labor/:id", h.GetLaborRate)
	r.PUT("/v1/labor/:id", h.UpdateLaborRate)
	r.DELETE("/v1/labor/:id", h.DeleteLaborRate)
	r.POST("/v1/labor/import", h.ImportLaborRates)
	return r, uc
}

func TestCatalogHandler_CreatePart(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		r, _ := newCatalogRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/parts", bytes.NewBufferString(`{"price":10}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("price not a number", func(t *testing.T) {
		r, _ := newCatalogRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/parts", bytes.NewBufferString(`{"name":"Pad","price":"ten"}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_AMOUNT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("negative price", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().CreatePart(gomock.Any(), gomock.Any()).Return(entities.Part{}, usecase.ErrInvalidCatalogRate)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/parts", bytes.NewBufferString(`{"name":"Pad","price":-1}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().CreatePart(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Part) (entities.Part, error) {
			if !p.Price.Equal(decimal.RequireFromString("49.99")) || p.Brand != "Bosch" {
				t.Fatalf("unexpected part: %+v", p)
			}
			p.ID = "p1"
			return p, nil
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/parts", bytes.NewBufferString(`{"name":"Pad","brand":"Bosch","price":"49.99"}`)))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p1" || body["price"] != 49.99 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_Lists(t *testing.T) {
	r, uc := newCatalogRouter(t)
	uc.EXPECT().ListParts(gomock.Any(), entities.PartFilter{Brand: "Bosch", Category: "Brakes"}).Return([]entities.Part{{ID: "p1"}}, nil)
	uc.EXPECT().ListBrands(gomock.Any()).Return([]string{"Bosch", "NGK"}, nil)
	uc.EXPECT().ListCategories(gomock.Any(), "Bosch").Return([]string{"Brakes"}, nil)
	uc.EXPECT().ListLaborRates(gomock.Any()).Return([]entities.LaborRate{{ID: "l1"}}, nil)

	for path, want := range map[string]int{
		"/v1/parts?brand=Bosch&category=Brakes": 1,
		"/v1/parts/brands":                      2,
		"/v1/parts/categories?brand=Bosch":      1,
		"/v1/labor":                             1,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		var body []any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != want {
			t.Fatalf("%s: expected %d entries, got %s", path, want, w.Body.String())
		}
	}
}

func TestCatalogHandler_GetNotFound(t *testing.T) {
	r, uc := newCatalogRouter(t)
	uc.EXPECT().GetPart(gomock.Any(), "nope").Return(entities.Part{}, usecase.ErrPartNotFound)
	uc.EXPECT().GetLaborRate(gomock.Any(), "nope").Return(entities.LaborRate{}, usecase.ErrLaborRateNotFound)

	for _, path := range []string{"/v1/parts/nope", "/v1/labor/nope"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, w.Code)
		}
	}
}

func TestCatalogHandler_CreateLaborRate(t *testing.T) {
	r, uc := newCatalogRouter(t)
	uc.EXPECT().CreateLaborRate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.LaborRate) (entities.LaborRate, error) {
		l.ID = "l1"
		return l, nil
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/labor", bytes.NewBufferString(`{"name":"Mechanic","hourly_rate":66.67}`)))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestCatalogHandler_UpdatePart(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().UpdatePart(gomock.Any(), "p1", gomock.Any()).DoAndReturn(func(_ context.Context, id string, p entities.Part) (entities.Part, error) {
			if !p.Price.Equal(decimal.RequireFromString("52.5")) {
				t.Fatalf("unexpected price: %s", p.Price)
			}
			p.ID = id
			return p, nil
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/parts/p1", bytes.NewBufferString(`{"name":"Pad","price":52.5}`)))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().UpdateLaborRate(gomock.Any(), "l9", gomock.Any()).Return(entities.LaborRate{}, usecase.ErrLaborRateNotFound)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/labor/l9", bytes.NewBufferString(`{"name":"Mechanic","hourly_rate":"70"}`)))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("huge exponent", func(t *testing.T) {
		r, _ := newCatalogRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/parts/p1", bytes.NewBufferString(`{"name":"Pad","price":"1e20000000"}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_Delete(t *testing.T) {
	r, uc := newCatalogRouter(t)
	uc.EXPECT().DeletePart(gomock.Any(), "p1").Return(nil)
	uc.EXPECT().DeleteLaborRate(gomock.Any(), "l1").Return(usecase.ErrLaborRateNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/parts/p1", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/labor/l1", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func uploadRequest(t *testing.T, path, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = fmt.Fprint(fw, content)
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCatalogHandler_ImportParts(t *testing.T) {
	t.Run("imported", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().ImportParts(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, table entities.Table) (entities.ImportResult, error) {
			if len(table.Headers) != 2 || len(table.Rows) != 2 || table.Rows[1][0] != "Filter" {
				t.Fatalf("unexpected table: %+v", table)
			}
			return entities.ImportResult{TotalRows: 2, Imported: 1, Errors: []entities.ImportError{{Row: 3, Field: "price", Message: "price must be a number"}}}, nil
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, uploadRequest(t, "/v1/parts/import", "parts.csv", "name,price\nPad,49.99\nFilter,cheap\n"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["imported"] != float64(1) || body["rejected"] != float64(1) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		r, _ := newCatalogRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/parts/import", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		r, _ := newCatalogRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, uploadRequest(t, "/v1/parts/import", "parts.pdf", "%PDF"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_FILE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing column", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().ImportLaborRates(gomock.Any(), gomock.Any()).Return(entities.ImportResult{}, fmt.Errorf("%w: hourly_rate", usecase.ErrImportMissingColumn))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, uploadRequest(t, "/v1/labor/import", "labor.csv", "name\nMechanic\n"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "MISSING_COLUMN" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
