package request

import (
	"strings"

	"business_manager/internal/domain/entities"
)

type CustomerProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r CustomerProfileRequest) ToEntity() entities.CustomerProfile {
	return entities.CustomerProfile{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Address: strings.TrimSpace(r.Address),
	}
}
