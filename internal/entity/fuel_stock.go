package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelType is the fixed code of a fuel sold at the station.
type FuelType string

const (
	FuelGasolineRegular  FuelType = "GAS_COMUM"
	FuelGasolineAdditive FuelType = "GAS_ADITIVADA"
	FuelDieselRegular    FuelType = "DIESEL_COMUM"
	FuelDieselS10        FuelType = "DIESEL_S10"
	FuelEthanol          FuelType = "ETANOL"
)

// FuelTypes lists every fuel code in display order.
var FuelTypes = []FuelType{
	FuelGasolineRegular,
	FuelGasolineAdditive,
	FuelDieselRegular,
	FuelDieselS10,
	FuelEthanol,
}

var fuelLabels = map[FuelType]string{
	FuelGasolineRegular:  "Gasolina Comum",
	FuelGasolineAdditive: "Gasolina Aditivada",
	FuelDieselRegular:    "Diesel Comum",
	FuelDieselS10:        "Diesel S-10",
	FuelEthanol:          "Etanol",
}

// suggested price per liter offered when a fuel is first registered
var fuelBasePrices = map[FuelType]decimal.Decimal{
	FuelGasolineRegular:  decimal.RequireFromString("5.50"),
	FuelGasolineAdditive: decimal.RequireFromString("6.20"),
	FuelDieselRegular:    decimal.RequireFromString("6.00"),
	FuelDieselS10:        decimal.RequireFromString("6.50"),
	FuelEthanol:          decimal.RequireFromString("4.50"),
}

// Valid reports whether t is one of the known fuel codes.
func (t FuelType) Valid() bool {
	_, ok := fuelLabels[t]
	return ok
}

// Label returns the human readable name of the fuel.
func (t FuelType) Label() string {
	if label, ok := fuelLabels[t]; ok {
		return label
	}
	return string(t)
}

// BasePrice returns the suggested initial price per liter.
func (t FuelType) BasePrice() decimal.Decimal {
	return fuelBasePrices[t]
}

// FuelStock is the current state of one fuel: liters on hand and price per liter.
// Quantity is only changed by a stock movement, price only by an explicit price edit.
type FuelStock struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	FuelType      FuelType        `gorm:"type:varchar(20);uniqueIndex;not null" json:"fuel_type"`
	Quantity      decimal.Decimal `gorm:"column:quantity_liters;type:numeric(10,2);not null;default:0" json:"quantity_liters"`
	PricePerLiter decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price_per_liter"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the FuelStock model.
func (FuelStock) TableName() string {
	return "fuel_stocks"
}

// Label returns the display name of the stocked fuel.
func (f FuelStock) Label() string {
	return f.FuelType.Label()
}
