package entities

import "time"

// CustomerProfile is a registry entry. Documents copy it into their
// Customer field when created, so later edits here do not rewrite history.
type CustomerProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns the denormalized form stored on documents.
func (c CustomerProfile) Snapshot() Customer {
	return Customer{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}
