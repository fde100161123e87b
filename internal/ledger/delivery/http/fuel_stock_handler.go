package http

import (
	"net/http"
	"strings"

	"posto-ledger/internal/entity"
	"posto-ledger/internal/ledger/dto"
	"posto-ledger/internal/ledger/service"
	"posto-ledger/pkg/logger"

	"github.com/labstack/echo/v4"
)

// FuelStockHandler handles HTTP requests for fuel stocks and their movements.
type FuelStockHandler struct {
	catalog   service.CatalogService
	movements service.MovementService
	logger    *logger.Logger
}

// NewFuelStockHandler creates a new FuelStockHandler.
func NewFuelStockHandler(catalog service.CatalogService, movements service.MovementService, logger *logger.Logger) *FuelStockHandler {
	return &FuelStockHandler{catalog: catalog, movements: movements, logger: logger}
}

// RegisterRoutes registers the fuel stock routes to the Echo group. The
// movement route is wrapped by the given middlewares.
func (h *FuelStockHandler) RegisterRoutes(g *echo.Group, movementMiddleware ...echo.MiddlewareFunc) {
	g.GET("", h.ListFuelStocks)
	g.POST("", h.CreateFuelStock)
	g.GET("/available-types", h.AvailableFuelTypes)
	g.GET("/:id", h.GetFuelStock)
	g.DELETE("/:id", h.DeleteFuelStock)
	g.POST("/:id/movements", h.ApplyMovement, movementMiddleware...)
}

// ListFuelStocks godoc
// @Summary List fuel stocks
// @Tags fuel-stocks
// @Produce  json
// @Success 200 {array} dto.FuelStockResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fuel-stocks [get]
func (h *FuelStockHandler) ListFuelStocks(c echo.Context) error {
	stocks, err := h.catalog.ListFuelStocks(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	resp := make([]dto.FuelStockResponse, 0, len(stocks))
	for i := range stocks {
		resp = append(resp, toFuelStockResponse(&stocks[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateFuelStock godoc
// @Summary Register a fuel type
// @Description Register a fuel type with its initial quantity and price. Each type can be registered once.
// @Tags fuel-stocks
// @Accept  json
// @Produce  json
// @Param   stock  body    dto.CreateFuelStockRequest   true    "Fuel stock to create"
// @Success 201 {object} dto.FuelStockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fuel-stocks [post]
func (h *FuelStockHandler) CreateFuelStock(c echo.Context) error {
	var req dto.CreateFuelStockRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	fuelType := entity.FuelType(strings.ToUpper(strings.TrimSpace(req.FuelType)))
	stock, err := h.catalog.CreateFuelStock(c.Request().Context(), fuelType, req.QuantityLiters, req.PricePerLiter)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, toFuelStockResponse(stock))
}

// AvailableFuelTypes godoc
// @Summary List registrable fuel types
// @Description Fuel types not registered yet, with their suggested base price.
// @Tags fuel-stocks
// @Produce  json
// @Success 200 {array} dto.FuelTypeOptionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fuel-stocks/available-types [get]
func (h *FuelStockHandler) AvailableFuelTypes(c echo.Context) error {
	options, err := h.catalog.AvailableFuelTypes(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	resp := make([]dto.FuelTypeOptionResponse, 0, len(options))
	for _, opt := range options {
		resp = append(resp, dto.FuelTypeOptionResponse{
			FuelType:  string(opt.Type),
			Label:     opt.Label,
			BasePrice: opt.BasePrice.StringFixed(2),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// GetFuelStock godoc
// @Summary Get a fuel stock by ID
// @Tags fuel-stocks
// @Produce  json
// @Param   id  path    int true    "Fuel stock ID"
// @Success 200 {object} dto.FuelStockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fuel-stocks/{id} [get]
func (h *FuelStockHandler) GetFuelStock(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid fuel stock ID")
	}

	stock, err := h.catalog.GetFuelStock(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, toFuelStockResponse(stock))
}

// DeleteFuelStock godoc
// @Summary Delete a fuel stock
// @Description Delete a fuel stock that has no purchase or sale records.
// @Tags fuel-stocks
// @Param   id  path    int true    "Fuel stock ID"
// @Success 204 {object} nil
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /fuel-stocks/{id} [delete]
func (h *FuelStockHandler) DeleteFuelStock(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid fuel stock ID")
	}

	if err := h.catalog.DeleteFuelStock(c.Request().Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ApplyMovement godoc
// @Summary Move fuel in or out of stock
// @Description IN appends a purchase and OUT a sale at the stock's current price. Stock never goes negative.
// @Tags fuel-stocks
// @Accept  json
// @Produce  json
// @Param   id        path    int                  true    "Fuel stock ID"
// @Param   movement  body    dto.MovementRequest  true    "Movement"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /fuel-stocks/{id}/movements [post]
func (h *FuelStockHandler) ApplyMovement(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid fuel stock ID")
	}

	var req dto.MovementRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	result, err := h.movements.ApplyMovement(c.Request().Context(), &service.MovementRequest{
		FuelStockID: id,
		Quantity:    req.QuantityLiters,
		Direction:   entity.Direction(strings.ToUpper(strings.TrimSpace(req.Direction))),
		Note:        req.Note,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, toMovementResponse(result))
}
