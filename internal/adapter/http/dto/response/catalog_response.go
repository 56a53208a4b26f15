package response

import (
	"time"

	"business_manager/internal/domain/entities"
)

type PartResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku,omitempty"`
	Category  string    `json:"category,omitempty"`
	Brand     string    `json:"brand,omitempty"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Category:  p.Category,
		Brand:     p.Brand,
		Price:     amount(p.Price),
		CreatedAt: p.CreatedAt,
	}
}

func FromParts(parts []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, FromPart(p))
	}
	return out
}

type LaborRateResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	HourlyRate  float64   `json:"hourly_rate"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromLaborRate(l entities.LaborRate) LaborRateResponse {
	return LaborRateResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		HourlyRate:  amount(l.HourlyRate),
		CreatedAt:   l.CreatedAt,
	}
}

func FromLaborRates(rates []entities.LaborRate) []LaborRateResponse {
	out := make([]LaborRateResponse, 0, len(rates))
	for _, l := range rates {
		out = append(out, FromLaborRate(l))
	}
	return out
}

type ImportErrorResponse struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ImportResultResponse struct {
	TotalRows int                   `json:"total_rows"`
	Imported  int                   `json:"imported"`
	Rejected  int                   `json:"rejected"`
	Errors    []ImportErrorResponse `json:"errors"`
}

func FromImportResult(r entities.ImportResult) ImportResultResponse {
	errs := make([]ImportErrorResponse, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, ImportErrorResponse{Row: e.Row, Field: e.Field, Message: e.Message})
	}
	return ImportResultResponse{
		TotalRows: r.TotalRows,
		Imported:  r.Imported,
		Rejected:  len(r.Errors),
		Errors:    errs,
	}
}
