package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TransactionKind is the financial direction of a transaction.
type TransactionKind string

const (
	KindBuy  TransactionKind = "BUY"
	KindSell TransactionKind = "SELL"
)

// Valid reports whether k is BUY or SELL.
func (k TransactionKind) Valid() bool {
	return k == KindBuy || k == KindSell
}

// Direction is the stock direction of a movement.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// Valid reports whether d is IN or OUT.
func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// PurchaseRecord is an immutable entry for fuel bought into stock.
type PurchaseRecord struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	FuelStockID   uint            `gorm:"not null;index" json:"fuel_stock_id"`
	Quantity      decimal.Decimal `gorm:"column:quantity_liters;type:numeric(10,2);not null" json:"quantity_liters"`
	PricePerLiter decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price_per_liter"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Details       datatypes.JSON  `gorm:"type:jsonb" json:"details,omitempty" swaggertype:"object"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	FuelStock     *FuelStock      `gorm:"foreignKey:FuelStockID;constraint:OnDelete:RESTRICT" json:"fuel_stock,omitempty"`
}

// TableName specifies the table name for the PurchaseRecord model.
func (PurchaseRecord) TableName() string {
	return "purchase_records"
}

// SaleRecord is an immutable entry for fuel sold out of stock.
type SaleRecord struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	FuelStockID   uint            `gorm:"not null;index" json:"fuel_stock_id"`
	Quantity      decimal.Decimal `gorm:"column:quantity_liters;type:numeric(10,2);not null" json:"quantity_liters"`
	PricePerLiter decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price_per_liter"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Details       datatypes.JSON  `gorm:"type:jsonb" json:"details,omitempty" swaggertype:"object"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	FuelStock     *FuelStock      `gorm:"foreignKey:FuelStockID;constraint:OnDelete:RESTRICT" json:"fuel_stock,omitempty"`
}

// TableName specifies the table name for the SaleRecord model.
func (SaleRecord) TableName() string {
	return "sale_records"
}

// ServiceRecord is an immutable entry for a service bought or sold.
type ServiceRecord struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ServiceID uint            `gorm:"not null;index" json:"service_id"`
	Kind      TransactionKind `gorm:"type:varchar(10);not null" json:"kind"`
	Quantity  decimal.Decimal `gorm:"type:numeric(10,2);not null;default:1" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Details   datatypes.JSON  `gorm:"type:jsonb" json:"details,omitempty" swaggertype:"object"`
	CreatedAt time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	Service   *Service        `gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT" json:"service,omitempty"`
}

// TableName specifies the table name for the ServiceRecord model.
func (ServiceRecord) TableName() string {
	return "service_records"
}

// RecordDetails is the audit payload stored in the Details column of ledger records.
type RecordDetails struct {
	Source string `json:"source"`
	Note   string `json:"note,omitempty"`
}

const (
	SourceMovement    = "movement"
	SourceTransaction = "transaction"
)
