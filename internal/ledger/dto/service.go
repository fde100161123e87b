package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest is the DTO for registering a service.
type CreateServiceRequest struct {
	Name        string          `json:"name" example:"Troca de Óleo"`
	Description *string         `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string" example:"90.00"`
}

// ServiceResponse is the DTO for a service row.
type ServiceResponse struct {
	ID          uint      `json:"id"`
	Item        string    `json:"item" example:"service:1"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	UnitPrice   string    `json:"unit_price"`
	CreatedAt   time.Time `json:"created_at"`
}
