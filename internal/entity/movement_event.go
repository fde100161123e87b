package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementEvent is published on the ledger stream after a fuel movement commits.
type MovementEvent struct {
	FuelStockID   uint            `json:"fuel_stock_id"`
	FuelType      FuelType        `json:"fuel_type"`
	Direction     Direction       `json:"direction"`
	Quantity      decimal.Decimal `json:"quantity"`
	QuantityAfter decimal.Decimal `json:"quantity_after"`
	PricePerLiter decimal.Decimal `json:"price_per_liter"`
	Total         decimal.Decimal `json:"total"`
	RecordID      uint            `json:"record_id"`
	Source        string          `json:"source"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
