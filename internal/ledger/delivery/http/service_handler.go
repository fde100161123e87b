package http

import (
	"net/http"

	"posto-ledger/internal/ledger/dto"
	"posto-ledger/internal/ledger/service"
	"posto-ledger/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ServiceHandler handles HTTP requests for station services.
type ServiceHandler struct {
	catalog service.CatalogService
	logger  *logger.Logger
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(catalog service.CatalogService, logger *logger.Logger) *ServiceHandler {
	return &ServiceHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes registers the service routes to the Echo group.
func (h *ServiceHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListServices)
	g.POST("", h.CreateService)
	g.DELETE("/:id", h.DeleteService)
}

// ListServices godoc
// @Summary List services
// @Tags services
// @Produce  json
// @Success 200 {array} dto.ServiceResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services [get]
func (h *ServiceHandler) ListServices(c echo.Context) error {
	services, err := h.catalog.ListServices(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	resp := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		resp = append(resp, toServiceResponse(&services[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateService godoc
// @Summary Create a service
// @Tags services
// @Accept  json
// @Produce  json
// @Param   service  body    dto.CreateServiceRequest   true    "Service to create"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /services [post]
func (h *ServiceHandler) CreateService(c echo.Context) error {
	var req dto.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	svc, err := h.catalog.CreateService(c.Request().Context(), req.Name, req.Description, req.UnitPrice)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, toServiceResponse(svc))
}

// DeleteService godoc
// @Summary Delete a service
// @Description Delete a service that has no service records.
// @Tags services
// @Param   id  path    int true    "Service ID"
// @Success 204 {object} nil
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid service ID")
	}

	if err := h.catalog.DeleteService(c.Request().Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}
