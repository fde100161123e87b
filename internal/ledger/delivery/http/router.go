package http

import (
	"posto-ledger/internal/ledger/service"
	"posto-ledger/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	swagger "github.com/swaggo/echo-swagger"
)

// Services are the ledger services exposed over HTTP.
type Services struct {
	Catalog      service.CatalogService
	Movements    service.MovementService
	Transactions service.TransactionService
	Finance      service.FinanceService
}

// NewServer builds the Echo instance with every ledger route under /api/v1.
// Movement and transaction routes are limited to rateLimit requests per second per client.
func NewServer(svc Services, rateLimit int, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(RequestLogger(log.Named("http")))

	limiter := NewRateLimiter(rateLimit)
	apiV1 := e.Group("/api/v1")

	NewFuelStockHandler(svc.Catalog, svc.Movements, log).RegisterRoutes(apiV1.Group("/fuel-stocks"), limiter)
	NewServiceHandler(svc.Catalog, log).RegisterRoutes(apiV1.Group("/services"))
	NewItemHandler(svc.Catalog, log).RegisterRoutes(apiV1)
	NewTransactionHandler(svc.Transactions, log).RegisterRoutes(apiV1, limiter)
	NewFinanceHandler(svc.Finance, log).RegisterRoutes(apiV1.Group("/finance"))

	e.GET("/swagger/*", swagger.WrapHandler)
	return e
}
