package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"posto-ledger/internal/entity"
	"posto-ledger/pkg/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.NewDB(database.Config{Driver: "sqlite", Path: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db.DB))
	t.Cleanup(func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewStore(db.DB)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFuelStockRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	stock := &entity.FuelStock{FuelType: entity.FuelEthanol, Quantity: dec("100"), PricePerLiter: dec("4.5")}
	require.NoError(t, store.FuelStocks.Create(ctx, stock))
	require.NotZero(t, stock.ID)

	found, err := store.FuelStocks.FindByID(ctx, stock.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FuelEthanol, found.FuelType)
	assert.True(t, found.Quantity.Equal(dec("100")))
	assert.True(t, found.PricePerLiter.Equal(dec("4.5")))

	byType, err := store.FuelStocks.FindByType(ctx, entity.FuelEthanol)
	require.NoError(t, err)
	assert.Equal(t, stock.ID, byType.ID)

	_, err = store.FuelStocks.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFuelStockRepository_DuplicateType(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.FuelStocks.Create(ctx, &entity.FuelStock{FuelType: entity.FuelDieselS10, PricePerLiter: dec("6.5")}))
	err := store.FuelStocks.Create(ctx, &entity.FuelStock{FuelType: entity.FuelDieselS10, PricePerLiter: dec("6.5")})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestFuelStockRepository_UpdateMissingRow(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	assert.ErrorIs(t, store.FuelStocks.UpdateQuantity(ctx, 42, dec("1")), ErrNotFound)
	assert.ErrorIs(t, store.FuelStocks.UpdatePrice(ctx, 42, dec("1")), ErrNotFound)
	assert.ErrorIs(t, store.FuelStocks.Delete(ctx, 42), ErrNotFound)
}

func TestServiceRepository_FindByNameIgnoresCase(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Services.Create(ctx, &entity.Service{Name: "Balanceamento", UnitPrice: dec("50")}))

	svc, err := store.Services.FindByName(ctx, "BALANCEAMENTO")
	require.NoError(t, err)
	assert.Equal(t, "Balanceamento", svc.Name)

	_, err = store.Services.FindByName(ctx, "Alinhamento")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_TransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	stock := &entity.FuelStock{FuelType: entity.FuelGasolineRegular, Quantity: dec("10"), PricePerLiter: dec("5.5")}
	require.NoError(t, store.FuelStocks.Create(ctx, stock))

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(tx *Store) error {
		if err := tx.Records.CreatePurchase(ctx, &entity.PurchaseRecord{
			FuelStockID: stock.ID, Quantity: dec("5"), PricePerLiter: dec("5.5"), Total: dec("27.5"),
		}); err != nil {
			return err
		}
		if err := tx.FuelStocks.UpdateQuantity(ctx, stock.ID, dec("15")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	found, err := store.FuelStocks.FindByID(ctx, stock.ID)
	require.NoError(t, err)
	assert.True(t, found.Quantity.Equal(dec("10")))

	count, err := store.Records.CountByFuelStock(ctx, stock.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecordRepository_RecentAndTotals(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	stock := &entity.FuelStock{FuelType: entity.FuelGasolineAdditive, Quantity: dec("0"), PricePerLiter: dec("6.2")}
	require.NoError(t, store.FuelStocks.Create(ctx, stock))
	svc := &entity.Service{Name: "Alinhamento", UnitPrice: dec("80")}
	require.NoError(t, store.Services.Create(ctx, svc))

	require.NoError(t, store.Records.CreatePurchase(ctx, &entity.PurchaseRecord{FuelStockID: stock.ID, Quantity: dec("10"), PricePerLiter: dec("6.2"), Total: dec("62")}))
	require.NoError(t, store.Records.CreatePurchase(ctx, &entity.PurchaseRecord{FuelStockID: stock.ID, Quantity: dec("5"), PricePerLiter: dec("6.2"), Total: dec("31")}))
	require.NoError(t, store.Records.CreateSale(ctx, &entity.SaleRecord{FuelStockID: stock.ID, Quantity: dec("2"), PricePerLiter: dec("6.2"), Total: dec("12.4")}))
	require.NoError(t, store.Records.CreateServiceRecord(ctx, &entity.ServiceRecord{ServiceID: svc.ID, Kind: entity.KindSell, Quantity: dec("1"), UnitPrice: dec("80"), Total: dec("80")}))
	require.NoError(t, store.Records.CreateServiceRecord(ctx, &entity.ServiceRecord{ServiceID: svc.ID, Kind: entity.KindBuy, Quantity: dec("1"), UnitPrice: dec("80"), Total: dec("80")}))

	purchases, err := store.Records.RecentPurchases(ctx, 10)
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.True(t, purchases[0].Quantity.Equal(dec("5")), "newest purchase first")
	require.NotNil(t, purchases[0].FuelStock)
	assert.Equal(t, entity.FuelGasolineAdditive, purchases[0].FuelStock.FuelType)

	limited, err := store.Records.RecentPurchases(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	serviceRecords, err := store.Records.RecentServiceRecords(ctx, 10)
	require.NoError(t, err)
	require.Len(t, serviceRecords, 2)
	require.NotNil(t, serviceRecords[0].Service)
	assert.Equal(t, "Alinhamento", serviceRecords[0].Service.Name)

	now := time.Now()
	totals, err := store.Records.Totals(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "93.00", totals.Purchases.StringFixed(2))
	assert.Equal(t, "12.40", totals.Sales.StringFixed(2))
	assert.Equal(t, "80.00", totals.ServiceBuys.StringFixed(2))
	assert.Equal(t, "80.00", totals.ServiceSells.StringFixed(2))

	empty, err := store.Records.Totals(ctx, now.Add(time.Hour), now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.True(t, empty.Purchases.IsZero())

	count, err := store.Records.CountByFuelStock(ctx, stock.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestFuelStockRepository_DeleteRestrictedByRecords(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	stock := &entity.FuelStock{FuelType: entity.FuelDieselRegular, Quantity: dec("10"), PricePerLiter: dec("6")}
	require.NoError(t, store.FuelStocks.Create(ctx, stock))
	require.NoError(t, store.Records.CreateSale(ctx, &entity.SaleRecord{FuelStockID: stock.ID, Quantity: dec("1"), PricePerLiter: dec("6"), Total: dec("6")}))

	assert.Error(t, store.FuelStocks.Delete(ctx, stock.ID))
	_, err := store.FuelStocks.FindByID(ctx, stock.ID)
	assert.NoError(t, err)
}
