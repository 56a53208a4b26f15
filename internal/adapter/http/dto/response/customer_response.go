package response

import (
	"time"

	"business_manager/internal/domain/entities"
)

type CustomerProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCustomerProfile(c entities.CustomerProfile) CustomerProfileResponse {
	return CustomerProfileResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromCustomerProfiles(customers []entities.CustomerProfile) []CustomerProfileResponse {
	out := make([]CustomerProfileResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomerProfile(c))
	}
	return out
}

type CustomerDeletedResponse struct {
	ID               string `json:"id"`
	DocumentsRemoved int    `json:"documents_removed"`
}
