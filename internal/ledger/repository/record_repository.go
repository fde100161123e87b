package repository

import (
	"context"
	"time"

	"posto-ledger/internal/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Totals aggregates ledger amounts over a period.
type Totals struct {
	Purchases    decimal.Decimal
	Sales        decimal.Decimal
	ServiceBuys  decimal.Decimal
	ServiceSells decimal.Decimal
}

// RecordRepository appends and reads the immutable ledger records.
// There is intentionally no update or delete.
type RecordRepository interface {
	CreatePurchase(ctx context.Context, record *entity.PurchaseRecord) error
	CreateSale(ctx context.Context, record *entity.SaleRecord) error
	CreateServiceRecord(ctx context.Context, record *entity.ServiceRecord) error
	RecentPurchases(ctx context.Context, limit int) ([]entity.PurchaseRecord, error)
	RecentSales(ctx context.Context, limit int) ([]entity.SaleRecord, error)
	RecentServiceRecords(ctx context.Context, limit int) ([]entity.ServiceRecord, error)
	CountByFuelStock(ctx context.Context, fuelStockID uint) (int64, error)
	CountByService(ctx context.Context, serviceID uint) (int64, error)
	Totals(ctx context.Context, from, to time.Time) (*Totals, error)
}

// NewRecordRepository creates a new GORM-based record repository.
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

type recordRepository struct {
	db *gorm.DB
}

func (r *recordRepository) CreatePurchase(ctx context.Context, record *entity.PurchaseRecord) error {
	return translate(r.db.WithContext(ctx).Omit("FuelStock").Create(record).Error)
}

func (r *recordRepository) CreateSale(ctx context.Context, record *entity.SaleRecord) error {
	return translate(r.db.WithContext(ctx).Omit("FuelStock").Create(record).Error)
}

func (r *recordRepository) CreateServiceRecord(ctx context.Context, record *entity.ServiceRecord) error {
	return translate(r.db.WithContext(ctx).Omit("Service").Create(record).Error)
}

// RecentPurchases returns the latest purchases, newest first.
func (r *recordRepository) RecentPurchases(ctx context.Context, limit int) ([]entity.PurchaseRecord, error) {
	var records []entity.PurchaseRecord
	err := r.db.WithContext(ctx).
		Preload("FuelStock").
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// RecentSales returns the latest sales, newest first.
func (r *recordRepository) RecentSales(ctx context.Context, limit int) ([]entity.SaleRecord, error) {
	var records []entity.SaleRecord
	err := r.db.WithContext(ctx).
		Preload("FuelStock").
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// RecentServiceRecords returns the latest service records, newest first.
func (r *recordRepository) RecentServiceRecords(ctx context.Context, limit int) ([]entity.ServiceRecord, error) {
	var records []entity.ServiceRecord
	err := r.db.WithContext(ctx).
		Preload("Service").
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountByFuelStock counts purchases and sales referencing a fuel stock.
func (r *recordRepository) CountByFuelStock(ctx context.Context, fuelStockID uint) (int64, error) {
	var purchases, sales int64
	if err := r.db.WithContext(ctx).Model(&entity.PurchaseRecord{}).Where("fuel_stock_id = ?", fuelStockID).Count(&purchases).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.SaleRecord{}).Where("fuel_stock_id = ?", fuelStockID).Count(&sales).Error; err != nil {
		return 0, err
	}
	return purchases + sales, nil
}

// CountByService counts service records referencing a service.
func (r *recordRepository) CountByService(ctx context.Context, serviceID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.ServiceRecord{}).Where("service_id = ?", serviceID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Totals sums record totals created in [from, to). Bounds are compared in the
// local zone used by autoCreateTime so text-stored timestamps order correctly.
func (r *recordRepository) Totals(ctx context.Context, from, to time.Time) (*Totals, error) {
	var totals Totals
	var err error

	if totals.Purchases, err = r.sum(ctx, &entity.PurchaseRecord{}, from, to, ""); err != nil {
		return nil, err
	}
	if totals.Sales, err = r.sum(ctx, &entity.SaleRecord{}, from, to, ""); err != nil {
		return nil, err
	}
	if totals.ServiceBuys, err = r.sum(ctx, &entity.ServiceRecord{}, from, to, entity.KindBuy); err != nil {
		return nil, err
	}
	if totals.ServiceSells, err = r.sum(ctx, &entity.ServiceRecord{}, from, to, entity.KindSell); err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *recordRepository) sum(ctx context.Context, model interface{}, from, to time.Time, kind entity.TransactionKind) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	q := r.db.WithContext(ctx).Model(model).
		Select("SUM(total)").
		Where("created_at >= ? AND created_at < ?", from.Local(), to.Local())
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if err := q.Row().Scan(&total); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal.Round(2), nil
}
