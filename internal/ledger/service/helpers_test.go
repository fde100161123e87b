package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"posto-ledger/internal/entity"
	"posto-ledger/internal/ledger/repository"
	"posto-ledger/pkg/database"
	"posto-ledger/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	db, err := database.NewDB(database.Config{Driver: "sqlite", Path: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db.DB))
	t.Cleanup(func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return repository.NewStore(db.DB)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedFuel(t *testing.T, store *repository.Store, fuelType entity.FuelType, quantity, price string) *entity.FuelStock {
	t.Helper()
	stock := &entity.FuelStock{FuelType: fuelType, Quantity: dec(quantity), PricePerLiter: dec(price)}
	require.NoError(t, store.FuelStocks.Create(context.Background(), stock))
	return stock
}

func seedService(t *testing.T, store *repository.Store, name, price string) *entity.Service {
	t.Helper()
	svc := &entity.Service{Name: name, UnitPrice: dec(price)}
	require.NoError(t, store.Services.Create(context.Background(), svc))
	return svc
}

// recordingEvents captures published movement events.
type recordingEvents struct {
	mu     sync.Mutex
	events []entity.MovementEvent
	err    error
}

func (r *recordingEvents) PublishMovement(_ context.Context, event *entity.MovementEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, *event)
	return nil
}

func (r *recordingEvents) published() []entity.MovementEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.MovementEvent(nil), r.events...)
}

var errPublish = errors.New("stream unavailable")

func newMovementService(store *repository.Store, events repository.EventRepository) MovementService {
	return NewMovementService(store, events, logger.NewNop())
}
