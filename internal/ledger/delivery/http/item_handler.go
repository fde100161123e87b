package http

import (
	"net/http"

	"posto-ledger/internal/ledger/dto"
	"posto-ledger/internal/ledger/service"
	"posto-ledger/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ItemHandler serves the combined fuel and service catalog.
type ItemHandler struct {
	catalog service.CatalogService
	logger  *logger.Logger
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(catalog service.CatalogService, logger *logger.Logger) *ItemHandler {
	return &ItemHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes registers the catalog routes to the Echo group.
func (h *ItemHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/items", h.ListItems)
	g.PUT("/prices", h.UpdatePrice)
}

// ListItems godoc
// @Summary List selectable items
// @Description Every fuel stock and service with its reference, label and current price.
// @Tags items
// @Produce  json
// @Success 200 {array} dto.ItemResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items [get]
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.catalog.ListItems(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	resp := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toItemResponse(item))
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdatePrice godoc
// @Summary Change an item price
// @Tags items
// @Accept  json
// @Produce  json
// @Param   price  body    dto.UpdatePriceRequest   true    "Item and new price"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /prices [put]
func (h *ItemHandler) UpdatePrice(c echo.Context) error {
	var req dto.UpdatePriceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	ref, err := service.ParseItemRef(req.Item)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	item, err := h.catalog.UpdatePrice(c.Request().Context(), ref, req.Price)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(*item))
}
