package service

import (
	"context"
	"testing"
	"time"

	"posto-ledger/internal/entity"
	"posto-ledger/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) CatalogService {
	t.Helper()
	return NewCatalogService(newTestStore(t), time.Minute, logger.NewNop())
}

func TestCatalog_CreateFuelStock(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	stock, err := catalog.CreateFuelStock(ctx, entity.FuelEthanol, dec("100"), dec("4.50"))
	require.NoError(t, err)
	assert.NotZero(t, stock.ID)

	_, err = catalog.CreateFuelStock(ctx, entity.FuelEthanol, dec("1"), dec("4.50"))
	assert.ErrorIs(t, err, ErrConflict)

	_, err = catalog.CreateFuelStock(ctx, "KEROSENE", dec("1"), dec("4.50"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = catalog.CreateFuelStock(ctx, entity.FuelDieselS10, dec("-1"), dec("6.50"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = catalog.CreateFuelStock(ctx, entity.FuelDieselS10, dec("1"), dec("6.505"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, err := catalog.GetFuelStock(ctx, stock.ID)
	require.NoError(t, err)
	assert.Equal(t, "100.00", got.Quantity.StringFixed(2))

	_, err = catalog.GetFuelStock(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_AvailableFuelTypes(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	options, err := catalog.AvailableFuelTypes(ctx)
	require.NoError(t, err)
	require.Len(t, options, len(entity.FuelTypes))

	_, err = catalog.CreateFuelStock(ctx, entity.FuelGasolineRegular, dec("0"), dec("5.50"))
	require.NoError(t, err)

	options, err = catalog.AvailableFuelTypes(ctx)
	require.NoError(t, err)
	require.Len(t, options, len(entity.FuelTypes)-1)
	for _, opt := range options {
		assert.NotEqual(t, entity.FuelGasolineRegular, opt.Type)
		if opt.Type == entity.FuelEthanol {
			assert.Equal(t, "Etanol", opt.Label)
			assert.Equal(t, "4.50", opt.BasePrice.StringFixed(2))
		}
	}
}

func TestCatalog_CreateServiceRejectsDuplicateNames(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	desc := "  Alinhamento 3D  "
	svc, err := catalog.CreateService(ctx, " Alinhamento ", &desc, dec("80"))
	require.NoError(t, err)
	assert.Equal(t, "Alinhamento", svc.Name)
	require.NotNil(t, svc.Description)
	assert.Equal(t, "Alinhamento 3D", *svc.Description)

	_, err = catalog.CreateService(ctx, "ALINHAMENTO", nil, dec("80"))
	assert.ErrorIs(t, err, ErrConflict)

	_, err = catalog.CreateService(ctx, "   ", nil, dec("80"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCatalog_SeedDefaultServicesIsIdempotent(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	_, err := catalog.CreateService(ctx, "balanceamento", nil, dec("55"))
	require.NoError(t, err)

	created, err := catalog.SeedDefaultServices(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultServices)-1, created)

	created, err = catalog.SeedDefaultServices(ctx)
	require.NoError(t, err)
	assert.Zero(t, created)

	services, err := catalog.ListServices(ctx)
	require.NoError(t, err)
	assert.Len(t, services, len(DefaultServices))
}

func TestCatalog_UpdatePriceAppliesToNextMovement(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	catalog := NewCatalogService(store, time.Minute, logger.NewNop())
	movements := newMovementService(store, nil)

	stock, err := catalog.CreateFuelStock(ctx, entity.FuelGasolineAdditive, dec("50"), dec("6.20"))
	require.NoError(t, err)

	items, err := catalog.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "6.20", items[0].Price.StringFixed(2))

	item, err := catalog.UpdatePrice(ctx, entity.FuelRef(stock.ID), dec("6.49"))
	require.NoError(t, err)
	assert.Equal(t, "Gasolina Aditivada", item.Label)

	items, err = catalog.ListItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, "6.49", items[0].Price.StringFixed(2), "cache invalidated on price change")

	res, err := movements.ApplyMovement(ctx, &MovementRequest{FuelStockID: stock.ID, Quantity: dec("10"), Direction: entity.DirectionOut})
	require.NoError(t, err)
	assert.Equal(t, "64.90", res.Total.StringFixed(2))

	_, err = catalog.UpdatePrice(ctx, entity.ServiceRef(404), dec("1"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = catalog.UpdatePrice(ctx, entity.ItemRef{ID: stock.ID}, dec("1"))
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = catalog.UpdatePrice(ctx, entity.FuelRef(stock.ID), dec("-1"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCatalog_ListItemsOrdersFuelBeforeServices(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	_, err := catalog.CreateService(ctx, "Troca de Pneus", nil, dec("40"))
	require.NoError(t, err)
	stock, err := catalog.CreateFuelStock(ctx, entity.FuelDieselRegular, dec("0"), dec("6"))
	require.NoError(t, err)

	items, err := catalog.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, entity.FuelRef(stock.ID), items[0].Ref)
	assert.Equal(t, "Diesel Comum", items[0].Label)
	assert.True(t, items[1].Ref.IsService())
	assert.Equal(t, "Troca de Pneus", items[1].Label)
}

func TestCatalog_DeleteIsProtectedByRecords(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	catalog := NewCatalogService(store, time.Minute, logger.NewNop())
	dispatcher := NewTransactionService(store, newMovementService(store, nil), logger.NewNop())

	used, err := catalog.CreateFuelStock(ctx, entity.FuelEthanol, dec("10"), dec("4.50"))
	require.NoError(t, err)
	unused, err := catalog.CreateFuelStock(ctx, entity.FuelDieselS10, dec("10"), dec("6.50"))
	require.NoError(t, err)
	svc, err := catalog.CreateService(ctx, "Lavagem Completa", nil, dec("65"))
	require.NoError(t, err)

	_, err = dispatcher.ExecuteTransaction(ctx, &TransactionRequest{Item: entity.FuelRef(used.ID), Quantity: dec("1"), Kind: entity.KindSell})
	require.NoError(t, err)
	_, err = dispatcher.ExecuteTransaction(ctx, &TransactionRequest{Item: entity.ServiceRef(svc.ID), Quantity: dec("1"), Kind: entity.KindSell})
	require.NoError(t, err)

	assert.ErrorIs(t, catalog.DeleteFuelStock(ctx, used.ID), ErrConflict)
	assert.ErrorIs(t, catalog.DeleteService(ctx, svc.ID), ErrConflict)
	assert.ErrorIs(t, catalog.DeleteService(ctx, 999), ErrNotFound)

	require.NoError(t, catalog.DeleteFuelStock(ctx, unused.ID))
	_, err = catalog.GetFuelStock(ctx, unused.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	stocks, err := catalog.ListFuelStocks(ctx)
	require.NoError(t, err)
	require.Len(t, stocks, 1)
	assert.Equal(t, used.ID, stocks[0].ID)
}
