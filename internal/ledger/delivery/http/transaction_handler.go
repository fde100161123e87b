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

// TransactionHandler handles buy and sell requests.
type TransactionHandler struct {
	transactions service.TransactionService
	logger       *logger.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactions service.TransactionService, logger *logger.Logger) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, logger: logger}
}

// RegisterRoutes registers the transaction route, wrapped by the given middlewares.
func (h *TransactionHandler) RegisterRoutes(g *echo.Group, m ...echo.MiddlewareFunc) {
	g.POST("/transactions", h.ExecuteTransaction, m...)
}

// ExecuteTransaction godoc
// @Summary Buy or sell an item
// @Description Fuel items move stock (BUY adds, SELL removes); service items only record the transaction. SELL is a cash inflow.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction  body    dto.TransactionRequest   true    "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) ExecuteTransaction(c echo.Context) error {
	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	ref, err := service.ParseItemRef(req.Item)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	summary, err := h.transactions.ExecuteTransaction(c.Request().Context(), &service.TransactionRequest{
		Item:     ref,
		Quantity: req.Quantity,
		Kind:     entity.TransactionKind(strings.ToUpper(strings.TrimSpace(req.Kind))),
		Note:     req.Note,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, toTransactionResponse(summary))
}
