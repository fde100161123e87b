package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"posto-ledger/internal/ledger/dto"
	"posto-ledger/internal/ledger/repository"
	"posto-ledger/internal/ledger/service"
	"posto-ledger/pkg/database"
	"posto-ledger/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, rateLimit int) *echo.Echo {
	t.Helper()
	db, err := database.NewDB(database.Config{Driver: "sqlite", Path: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db.DB))
	t.Cleanup(func() {
		if sqlDB, err := db.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	log := logger.NewNop()
	store := repository.NewStore(db.DB)
	movements := service.NewMovementService(store, repository.NewNopEventRepository(), log)
	return NewServer(Services{
		Catalog:      service.NewCatalogService(store, time.Minute, log),
		Movements:    movements,
		Transactions: service.NewTransactionService(store, movements, log),
		Finance:      service.NewFinanceService(store, 10, log),
	}, rateLimit, log)
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestFuelStockRoutes(t *testing.T) {
	e := newTestServer(t, 0)

	rec := do(e, http.MethodPost, "/api/v1/fuel-stocks", `{"fuel_type":"etanol","quantity_liters":"100","price_per_liter":"4.50"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	stock := decode[dto.FuelStockResponse](t, rec)
	assert.Equal(t, "ETANOL", stock.FuelType)
	assert.Equal(t, "Etanol", stock.Label)
	assert.Equal(t, "100.00", stock.QuantityLiters)
	assert.Equal(t, fmt.Sprintf("fuel:%d", stock.ID), stock.Item)

	rec = do(e, http.MethodPost, "/api/v1/fuel-stocks", `{"fuel_type":"ETANOL","quantity_liters":"1","price_per_liter":"4.50"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, service.CodeConflict, decode[dto.ErrorResponse](t, rec).Code)

	rec = do(e, http.MethodGet, "/api/v1/fuel-stocks/available-types", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]dto.FuelTypeOptionResponse](t, rec), 4)

	path := fmt.Sprintf("/api/v1/fuel-stocks/%d/movements", stock.ID)
	rec = do(e, http.MethodPost, path, `{"quantity_liters":"50","direction":"in"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	movement := decode[dto.MovementResponse](t, rec)
	assert.Equal(t, "225.00", movement.Total)
	assert.Equal(t, "150.00", movement.FuelStock.QuantityLiters)

	rec = do(e, http.MethodPost, path, `{"quantity_liters":"150.01","direction":"OUT"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, service.CodeInsufficientStock, decode[dto.ErrorResponse](t, rec).Code)

	rec = do(e, http.MethodPost, path, `{"quantity_liters":"1.234","direction":"OUT"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, fmt.Sprintf("/api/v1/fuel-stocks/%d", stock.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "150.00", decode[dto.FuelStockResponse](t, rec).QuantityLiters)

	rec = do(e, http.MethodGet, "/api/v1/fuel-stocks/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/fuel-stocks/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, service.CodeNotFound, decode[dto.ErrorResponse](t, rec).Code)

	rec = do(e, http.MethodDelete, fmt.Sprintf("/api/v1/fuel-stocks/%d", stock.ID), "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/fuel-stocks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]dto.FuelStockResponse](t, rec), 1)
}

func TestTransactionAndFinanceRoutes(t *testing.T) {
	e := newTestServer(t, 0)

	rec := do(e, http.MethodPost, "/api/v1/services", `{"name":"Troca de Óleo","unit_price":"90.00"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	oil := decode[dto.ServiceResponse](t, rec)

	rec = do(e, http.MethodPost, "/api/v1/transactions", fmt.Sprintf(`{"item":"%s","quantity":"1","kind":"sell"}`, oil.Item))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	summary := decode[dto.TransactionResponse](t, rec)
	assert.Equal(t, "Troca de Óleo", summary.ItemLabel)
	assert.Equal(t, "90.00", summary.Total)
	assert.Equal(t, "sell", summary.Kind)
	assert.True(t, summary.Inflow)

	rec = do(e, http.MethodPost, "/api/v1/transactions", `{"item":"X:1","quantity":"1","kind":"SELL"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, service.CodeInvalidReference, decode[dto.ErrorResponse](t, rec).Code)

	rec = do(e, http.MethodPost, "/api/v1/transactions", `{"item":"fuel:42","quantity":"1","kind":"BUY"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodPut, "/api/v1/prices", fmt.Sprintf(`{"item":"%s","price":"95.50"}`, oil.Item))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "95.50", decode[dto.ItemResponse](t, rec).Price)

	rec = do(e, http.MethodGet, "/api/v1/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decode[[]dto.ItemResponse](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "service", items[0].Kind)
	assert.Equal(t, "95.50", items[0].Price)

	rec = do(e, http.MethodGet, "/api/v1/finance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	overview := decode[dto.FinanceOverviewResponse](t, rec)
	require.Len(t, overview.ServiceRecords, 1)
	assert.Equal(t, "Troca de Óleo", overview.ServiceRecords[0].Label)
	assert.Equal(t, "sell", overview.ServiceRecords[0].Kind)
	assert.Empty(t, overview.Sales)

	now := time.Now().UTC()
	from := now.Add(-time.Hour).Format(time.RFC3339)
	to := now.Add(time.Hour).Format(time.RFC3339)
	rec = do(e, http.MethodGet, "/api/v1/finance/summary?from="+from+"&to="+to, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	totals := decode[dto.FinanceSummaryResponse](t, rec)
	assert.Equal(t, "90.00", totals.ServiceSells)
	assert.Equal(t, "90.00", totals.Net)

	rec = do(e, http.MethodGet, "/api/v1/finance/summary?from=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/finance?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodDelete, fmt.Sprintf("/api/v1/services/%d", oil.ID), "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestFinanceSummaryPeriodDefaults(t *testing.T) {
	e := newTestServer(t, 0)
	brt := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name     string
		query    string
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "past date as to only",
			query:    "to=2024-05-10",
			wantFrom: time.Date(2024, 5, 10, 0, 0, 0, 0, brt),
			wantTo:   time.Date(2024, 5, 11, 0, 0, 0, 0, brt),
		},
		{
			name:     "past instant as to only",
			query:    "to=2024-05-10T15:00:00Z",
			wantFrom: time.Date(2024, 5, 10, 0, 0, 0, 0, brt),
			wantTo:   time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "from only covers that day",
			query:    "from=2024-05-10",
			wantFrom: time.Date(2024, 5, 10, 0, 0, 0, 0, brt),
			wantTo:   time.Date(2024, 5, 11, 0, 0, 0, 0, brt),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodGet, "/api/v1/finance/summary?"+tt.query, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			totals := decode[dto.FinanceSummaryResponse](t, rec)
			assert.True(t, tt.wantFrom.Equal(totals.From), "from %s", totals.From)
			assert.True(t, tt.wantTo.Equal(totals.To), "to %s", totals.To)
			assert.Equal(t, "0.00", totals.Net)
		})
	}

	rec := do(e, http.MethodGet, "/api/v1/finance/summary?from=2024-05-10&to=2024-05-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransactionRouteIsRateLimited(t *testing.T) {
	e := newTestServer(t, 1)

	body := `{"item":"service:1","quantity":"1","kind":"SELL"}`
	first := do(e, http.MethodPost, "/api/v1/transactions", body)
	assert.Equal(t, http.StatusNotFound, first.Code)

	second := do(e, http.MethodPost, "/api/v1/transactions", body)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// reads are not limited
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/api/v1/items", "").Code)
	}
}
