package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"business_manager/internal/domain/entities"
	"business_manager/internal/domain/pricing"
)

var ErrImportMissingColumn = errors.New("import is missing a required column")

// importColumn maps accepted header spellings onto one field.
type importColumn struct {
	field    string
	aliases  []string
	required bool
}

var partColumns = []importColumn{
	{field: "name", aliases: []string{"name", "item", "part"}, required: true},
	{field: "sku", aliases: []string{"sku", "code"}},
	{field: "category", aliases: []string{"category"}},
	{field: "brand", aliases: []string{"brand"}},
	{field: "price", aliases: []string{"price", "unit_price", "base_price"}, required: true},
}

var laborColumns = []importColumn{
	{field: "name", aliases: []string{"name", "labor", "service"}, required: true},
	{field: "description", aliases: []string{"description"}},
	{field: "hourly_rate", aliases: []string{"hourly_rate", "rate"}, required: true},
}

// ImportParts creates one part per valid row. Rows with a missing name or
// an invalid price are reported and skipped.
func (u *CatalogUseCase) ImportParts(ctx context.Context, table entities.Table) (entities.ImportResult, error) {
	return importRows(ctx, u, table, partColumns, "parts", func(ctx context.Context, row map[string]string) (string, string, error) {
		price, ok := pricing.ParseAmount(row["price"])
		if !ok {
			return "price", "price must be a number", nil
		}
		_, err := u.CreatePart(ctx, entities.Part{
			Name:     row["name"],
			SKU:      row["sku"],
			Category: row["category"],
			Brand:    row["brand"],
			Price:    price,
		})
		return rowError(err, "price")
	})
}

// ImportLaborRates creates one labor rate per valid row.
func (u *CatalogUseCase) ImportLaborRates(ctx context.Context, table entities.Table) (entities.ImportResult, error) {
	return importRows(ctx, u, table, laborColumns, "labor rates", func(ctx context.Context, row map[string]string) (string, string, error) {
		rate, ok := pricing.ParseAmount(row["hourly_rate"])
		if !ok {
			return "hourly_rate", "hourly_rate must be a number", nil
		}
		_, err := u.CreateLaborRate(ctx, entities.LaborRate{
			Name:        row["name"],
			Description: row["description"],
			HourlyRate:  rate,
		})
		return rowError(err, "hourly_rate")
	})
}

// rowError turns validation failures into a row message. Other errors abort
// the import.
func rowError(err error, priceField string) (string, string, error) {
	switch {
	case err == nil:
		return "", "", nil
	case errors.Is(err, ErrInvalidCatalogName):
		return "name", "name is required", nil
	case errors.Is(err, ErrInvalidCatalogRate):
		return priceField, priceField + " must not be negative", nil
	default:
		return "", "", err
	}
}

type importFunc func(ctx context.Context, row map[string]string) (field, message string, err error)

func importRows(ctx context.Context, u *CatalogUseCase, table entities.Table, columns []importColumn, what string, create importFunc) (entities.ImportResult, error) {
	fields := mapImportHeaders(table.Headers, columns)
	for _, c := range columns {
		if c.required && !containsField(fields, c.field) {
			return entities.ImportResult{}, fmt.Errorf("%w: %s", ErrImportMissingColumn, c.field)
		}
	}

	result := entities.ImportResult{TotalRows: len(table.Rows), Errors: []entities.ImportError{}}
	for i, cells := range table.Rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		row := make(map[string]string, len(fields))
		for col, field := range fields {
			if field != "" && col < len(cells) {
				row[field] = strings.TrimSpace(cells[col])
			}
		}

		field, message, err := create(ctx, row)
		if err != nil {
			u.logger.Error().Err(err).Int("row", i+2).Str("import", what).Msg("catalog import aborted")
			return result, err
		}
		if message != "" {
			result.Errors = append(result.Errors, entities.ImportError{Row: i + 2, Field: field, Message: message})
			continue
		}
		result.Imported++
	}

	u.logger.Info().
		Str("import", what).
		Int("rows", result.TotalRows).
		Int("imported", result.Imported).
		Int("rejected", len(result.Errors)).
		Msg("catalog import finished")
	return result, nil
}

// mapImportHeaders returns the field of each column, or "" for columns that
// match no alias. Headers are compared case-insensitively with spaces and
// dashes read as underscores and a trailing "*" ignored.
func mapImportHeaders(headers []string, columns []importColumn) []string {
	byAlias := make(map[string]string)
	for _, c := range columns {
		for _, a := range c.aliases {
			byAlias[a] = c.field
		}
	}

	out := make([]string, len(headers))
	seen := make(map[string]bool, len(columns))
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		norm = strings.TrimSpace(strings.TrimSuffix(norm, "*"))
		norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
		if field, ok := byAlias[norm]; ok && !seen[field] {
			out[i] = field
			seen[field] = true
		}
	}
	return out
}

func containsField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
