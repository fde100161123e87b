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

func TestFinance_SummaryAndOverview(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	stock := seedFuel(t, store, entity.FuelEthanol, "100.00", "4.50")
	oil := seedService(t, store, "Troca de Óleo", "90.00")
	dispatcher := NewTransactionService(store, newMovementService(store, nil), logger.NewNop())
	finance := NewFinanceService(store, 2, logger.NewNop())

	run := func(ref entity.ItemRef, qty string, kind entity.TransactionKind) {
		_, err := dispatcher.ExecuteTransaction(ctx, &TransactionRequest{Item: ref, Quantity: dec(qty), Kind: kind})
		require.NoError(t, err)
	}
	run(entity.FuelRef(stock.ID), "50", entity.KindBuy)  // 225.00 out
	run(entity.FuelRef(stock.ID), "30", entity.KindSell) // 135.00 in
	run(entity.FuelRef(stock.ID), "10", entity.KindSell) // 45.00 in
	run(entity.FuelRef(stock.ID), "10", entity.KindSell) // 45.00 in
	run(entity.ServiceRef(oil.ID), "1", entity.KindSell) // 90.00 in
	run(entity.ServiceRef(oil.ID), "1", entity.KindBuy)  // 90.00 out

	now := time.Now()
	summary, err := finance.Summary(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "225.00", summary.Purchases.StringFixed(2))
	assert.Equal(t, "225.00", summary.Sales.StringFixed(2))
	assert.Equal(t, "90.00", summary.ServiceBuys.StringFixed(2))
	assert.Equal(t, "90.00", summary.ServiceSells.StringFixed(2))
	assert.Equal(t, "315.00", summary.Inflow.StringFixed(2))
	assert.Equal(t, "315.00", summary.Outflow.StringFixed(2))
	assert.True(t, summary.Net.IsZero())

	overview, err := finance.Overview(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, overview.Purchases, 1)
	assert.Len(t, overview.Sales, 2, "default limit applies")
	assert.Len(t, overview.ServiceRecords, 2)
	assert.Equal(t, entity.KindBuy, overview.ServiceRecords[0].Kind, "newest first")

	overview, err = finance.Overview(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, overview.Sales, 3)
}

func TestFinance_SummaryRejectsEmptyPeriod(t *testing.T) {
	finance := NewFinanceService(newTestStore(t), 0, logger.NewNop())
	now := time.Now()

	_, err := finance.Summary(context.Background(), now, now)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
