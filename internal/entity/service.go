package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is an offering sold per unit (oil change, car wash...). It has no stock.
type Service struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(120);uniqueIndex;not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"unit_price"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Service model.
func (Service) TableName() string {
	return "services"
}
