package dto

import "github.com/shopspring/decimal"

// UpdatePriceRequest is the DTO for changing the price of a fuel or service.
type UpdatePriceRequest struct {
	Item  string          `json:"item" example:"fuel:1"`
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"5.99"`
}

// ItemResponse is one selectable catalog entry.
type ItemResponse struct {
	Item  string `json:"item" example:"service:3"`
	Kind  string `json:"kind" example:"service"`
	Label string `json:"label"`
	Price string `json:"price"`
}
