//go:build postgres

package service

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync"
	"testing"

	"posto-ledger/internal/entity"
	"posto-ledger/internal/ledger/repository"
	"posto-ledger/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with: go test -tags postgres ./internal/ledger/service/ against a disposable database
// configured through LEDGER_TEST_PG_{HOST,PORT,USER,PASSWORD,NAME}.
func newPostgresStore(t *testing.T) *repository.Store {
	t.Helper()
	host := os.Getenv("LEDGER_TEST_PG_HOST")
	if host == "" {
		t.Skip("LEDGER_TEST_PG_HOST not set")
	}
	port, err := strconv.Atoi(envOr("LEDGER_TEST_PG_PORT", "5432"))
	require.NoError(t, err)

	db, err := database.NewDB(database.Config{
		Driver:       "postgres",
		Host:         host,
		Port:         port,
		User:         envOr("LEDGER_TEST_PG_USER", "postgres"),
		Password:     os.Getenv("LEDGER_TEST_PG_PASSWORD"),
		DBName:       envOr("LEDGER_TEST_PG_NAME", "posto_test"),
		SSLMode:      "disable",
		MaxOpenConns: 32,
	})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db.DB))

	clean := func() {
		db.DB.Exec("DELETE FROM purchase_records")
		db.DB.Exec("DELETE FROM sale_records")
		db.DB.Exec("DELETE FROM service_records")
		db.DB.Exec("DELETE FROM fuel_stocks")
		db.DB.Exec("DELETE FROM services")
	}
	clean()
	t.Cleanup(func() {
		clean()
		if sqlDB, err := db.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repository.NewStore(db.DB)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestApplyMovement_PostgresRowLockPreventsOverselling(t *testing.T) {
	ctx := context.Background()
	store := newPostgresStore(t)
	svc := newMovementService(store, nil)
	stock := seedFuel(t, store, entity.FuelDieselRegular, "10.00", "6.00")

	const attempts = 25
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		applied  int
		rejected int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ApplyMovement(ctx, &MovementRequest{FuelStockID: stock.ID, Quantity: dec("1.00"), Direction: entity.DirectionOut})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				applied++
			case errors.Is(err, ErrInsufficientStock):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, applied)
	assert.Equal(t, attempts-10, rejected)

	stored, err := store.FuelStocks.FindByID(ctx, stock.ID)
	require.NoError(t, err)
	assert.True(t, stored.Quantity.IsZero(), "quantity %s", stored.Quantity)

	count, err := store.Records.CountByFuelStock(ctx, stock.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 10, count)
}

func TestApplyMovement_PostgresConcurrentDeltasSum(t *testing.T) {
	ctx := context.Background()
	store := newPostgresStore(t)
	svc := newMovementService(store, nil)
	stock := seedFuel(t, store, entity.FuelEthanol, "10.00", "4.50")

	const ins, outs = 20, 10
	var wg sync.WaitGroup
	errs := make(chan error, ins+outs)
	for i := 0; i < ins+outs; i++ {
		dir := entity.DirectionIn
		if i%3 == 2 {
			dir = entity.DirectionOut
		}
		wg.Add(1)
		go func(dir entity.Direction) {
			defer wg.Done()
			_, err := svc.ApplyMovement(ctx, &MovementRequest{FuelStockID: stock.ID, Quantity: dec("1.00"), Direction: dir})
			errs <- err
		}(dir)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := store.FuelStocks.FindByID(ctx, stock.ID)
	require.NoError(t, err)
	assert.Equal(t, "20.00", stored.Quantity.StringFixed(2))
}
