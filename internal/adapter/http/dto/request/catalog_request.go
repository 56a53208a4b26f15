package request

import (
	"errors"
	"strings"

	"business_manager/internal/domain/entities"
	"business_manager/internal/domain/pricing"
)

var ErrInvalidAmount = errors.New("invalid amount")

type PartRequest struct {
	Name     string    `json:"name" binding:"required"`
	SKU      string    `json:"sku"`
	Category string    `json:"category"`
	Brand    string    `json:"brand"`
	Price    RawNumber `json:"price" binding:"required"`
}

func (r PartRequest) ToEntity() (entities.Part, error) {
	price, ok := pricing.ParseAmount(r.Price.String())
	if !ok {
		return entities.Part{}, ErrInvalidAmount
	}
	return entities.Part{
		Name:     strings.TrimSpace(r.Name),
		SKU:      strings.TrimSpace(r.SKU),
		Category: strings.TrimSpace(r.Category),
		Brand:    strings.TrimSpace(r.Brand),
		Price:    price,
	}, nil
}

type LaborRateRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	HourlyRate  RawNumber `json:"hourly_rate" binding:"required"`
}

func (r LaborRateRequest) ToEntity() (entities.LaborRate, error) {
	rate, ok := pricing.ParseAmount(r.HourlyRate.String())
	if !ok {
		return entities.LaborRate{}, ErrInvalidAmount
	}
	return entities.LaborRate{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		HourlyRate:  rate,
	}, nil
}
