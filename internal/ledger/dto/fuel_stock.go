package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFuelStockRequest is the DTO for registering a fuel type.
type CreateFuelStockRequest struct {
	FuelType       string          `json:"fuel_type" example:"ETANOL"`
	QuantityLiters decimal.Decimal `json:"quantity_liters" swaggertype:"string" example:"1000.00"`
	PricePerLiter  decimal.Decimal `json:"price_per_liter" swaggertype:"string" example:"4.50"`
}

// FuelStockResponse is the DTO for a fuel stock row.
type FuelStockResponse struct {
	ID             uint      `json:"id"`
	Item           string    `json:"item" example:"fuel:1"`
	FuelType       string    `json:"fuel_type"`
	Label          string    `json:"label"`
	QuantityLiters string    `json:"quantity_liters" example:"1000.00"`
	PricePerLiter  string    `json:"price_per_liter" example:"4.50"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FuelTypeOptionResponse is a fuel type that can still be registered.
type FuelTypeOptionResponse struct {
	FuelType  string `json:"fuel_type"`
	Label     string `json:"label"`
	BasePrice string `json:"base_price"`
}

// MovementRequest is the DTO for a stock movement. The price is always the
// stock's current price.
type MovementRequest struct {
	QuantityLiters decimal.Decimal `json:"quantity_liters" swaggertype:"string" example:"50.00"`
	Direction      string          `json:"direction" example:"IN"`
	Note           string          `json:"note,omitempty"`
}

// MovementResponse is the DTO for a committed movement.
type MovementResponse struct {
	RecordID       uint              `json:"record_id"`
	Direction      string            `json:"direction"`
	QuantityLiters string            `json:"quantity_liters"`
	PricePerLiter  string            `json:"price_per_liter"`
	Total          string            `json:"total"`
	CreatedAt      time.Time         `json:"created_at"`
	FuelStock      FuelStockResponse `json:"fuel_stock"`
}
