package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"business_manager/internal/domain/pricing"
)

// Part is a catalog part. Price is the base price before markup.
type Part struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category"`
	Brand     string          `json:"brand"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

func (p Part) Entry() pricing.PartEntry {
	return pricing.PartEntry{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Brand:     p.Brand,
		UnitPrice: p.Price,
	}
}

// PartFilter narrows ListParts the way the quote form does: brand first,
// then category within the brand. Empty fields match everything.
type PartFilter struct {
	Brand    string
	Category string
}

// LaborRate is a billable kind of work with an hourly rate.
type LaborRate struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (l LaborRate) Entry() pricing.LaborEntry {
	return pricing.LaborEntry{ID: l.ID, Name: l.Name, HourlyRate: l.HourlyRate}
}

// Table is a header row plus data rows read from an uploaded sheet.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ImportError points at one rejected cell. Row counts the header as row 1.
type ImportError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult summarizes a catalog import. Valid rows are stored even when
// other rows are rejected.
type ImportResult struct {
	TotalRows int           `json:"total_rows"`
	Imported  int           `json:"imported"`
	Errors    []ImportError `json:"errors"`
}
