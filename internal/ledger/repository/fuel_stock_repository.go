package repository

import (
	"context"

	"posto-ledger/internal/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FuelStockRepository defines the interface for fuel stock data operations.
type FuelStockRepository interface {
	Create(ctx context.Context, stock *entity.FuelStock) error
	FindByID(ctx context.Context, id uint) (*entity.FuelStock, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*entity.FuelStock, error)
	FindByType(ctx context.Context, fuelType entity.FuelType) (*entity.FuelStock, error)
	FindAll(ctx context.Context) ([]entity.FuelStock, error)
	ExistingTypes(ctx context.Context) ([]entity.FuelType, error)
	UpdateQuantity(ctx context.Context, id uint, quantity decimal.Decimal) error
	UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error
	Delete(ctx context.Context, id uint) error
}

// NewFuelStockRepository creates a new GORM-based fuel stock repository.
func NewFuelStockRepository(db *gorm.DB) FuelStockRepository {
	return &fuelStockRepository{db: db}
}

type fuelStockRepository struct {
	db *gorm.DB
}

// Create inserts a new fuel stock row.
func (r *fuelStockRepository) Create(ctx context.Context, stock *entity.FuelStock) error {
	return translate(r.db.WithContext(ctx).Create(stock).Error)
}

// FindByID retrieves a fuel stock by its ID.
func (r *fuelStockRepository) FindByID(ctx context.Context, id uint) (*entity.FuelStock, error) {
	var stock entity.FuelStock
	if err := r.db.WithContext(ctx).First(&stock, id).Error; err != nil {
		return nil, translate(err)
	}
	return &stock, nil
}

// FindByIDForUpdate retrieves a fuel stock and holds an exclusive row lock on
// it until the surrounding transaction ends.
func (r *fuelStockRepository) FindByIDForUpdate(ctx context.Context, id uint) (*entity.FuelStock, error) {
	var stock entity.FuelStock
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&stock, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &stock, nil
}

// FindByType retrieves the fuel stock registered for a fuel code.
func (r *fuelStockRepository) FindByType(ctx context.Context, fuelType entity.FuelType) (*entity.FuelStock, error) {
	var stock entity.FuelStock
	if err := r.db.WithContext(ctx).Where("fuel_type = ?", fuelType).First(&stock).Error; err != nil {
		return nil, translate(err)
	}
	return &stock, nil
}

// FindAll retrieves all fuel stocks ordered by fuel type.
func (r *fuelStockRepository) FindAll(ctx context.Context) ([]entity.FuelStock, error) {
	var stocks []entity.FuelStock
	if err := r.db.WithContext(ctx).Order("fuel_type").Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// ExistingTypes returns the fuel codes that already have a stock row.
func (r *fuelStockRepository) ExistingTypes(ctx context.Context) ([]entity.FuelType, error) {
	var types []entity.FuelType
	if err := r.db.WithContext(ctx).Model(&entity.FuelStock{}).Pluck("fuel_type", &types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// UpdateQuantity sets the liters on hand.
func (r *fuelStockRepository) UpdateQuantity(ctx context.Context, id uint, quantity decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&entity.FuelStock{ID: id}).Update("quantity_liters", quantity)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePrice sets the current price per liter.
func (r *fuelStockRepository) UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&entity.FuelStock{ID: id}).Update("price_per_liter", price)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a fuel stock row.
func (r *fuelStockRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.FuelStock{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
