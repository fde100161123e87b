package dto

import "github.com/shopspring/decimal"

// TransactionRequest is the DTO for a buy or sell on a catalog item.
type TransactionRequest struct {
	Item     string          `json:"item" example:"service:3"`
	Quantity decimal.Decimal `json:"quantity" swaggertype:"string" example:"1"`
	Kind     string          `json:"kind" example:"SELL"`
	Note     string          `json:"note,omitempty"`
}

// TransactionResponse summarizes an executed transaction.
type TransactionResponse struct {
	ItemLabel string `json:"item_label"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Total     string `json:"total"`
	Kind      string `json:"kind" example:"sell"`
	Inflow    bool   `json:"inflow"`
}
