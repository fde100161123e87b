package repository

import (
	"context"
	"errors"

	"posto-ledger/internal/entity"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when an id does not resolve to a row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// Store bundles the ledger repositories over one gorm handle. A Store created
// by Transaction shares that handle's database transaction.
type Store struct {
	db         *gorm.DB
	FuelStocks FuelStockRepository
	Services   ServiceRepository
	Records    RecordRepository
}

// NewStore creates a Store backed by db.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		FuelStocks: NewFuelStockRepository(db),
		Services:   NewServiceRepository(db),
		Records:    NewRecordRepository(db),
	}
}

// Transaction runs fn inside a single database transaction. Every write made
// through tx commits together when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(NewStore(gtx))
	})
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// AutoMigrate creates the ledger tables through gorm. Production schemas are
// managed by the SQL migrations; this is for SQLite runs and tests.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.FuelStock{},
		&entity.Service{},
		&entity.PurchaseRecord{},
		&entity.SaleRecord{},
		&entity.ServiceRecord{},
	)
}
