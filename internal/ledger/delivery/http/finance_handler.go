package http

import (
	"net/http"
	"strconv"
	"time"

	"posto-ledger/internal/ledger/service"
	"posto-ledger/pkg/common"
	"posto-ledger/pkg/logger"
	"posto-ledger/pkg/utils"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// FinanceHandler serves ledger listings and cash flow summaries.
type FinanceHandler struct {
	finance service.FinanceService
	logger  *logger.Logger
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(finance service.FinanceService, logger *logger.Logger) *FinanceHandler {
	return &FinanceHandler{finance: finance, logger: logger}
}

// RegisterRoutes registers the finance routes to the Echo group.
func (h *FinanceHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Overview)
	g.GET("/summary", h.Summary)
}

// Overview godoc
// @Summary Latest ledger records
// @Tags finance
// @Produce  json
// @Param   limit  query   int  false  "Records per ledger (default 10)"
// @Success 200 {object} dto.FinanceOverviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /finance [get]
func (h *FinanceHandler) Overview(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			return badRequest(c, "Invalid limit")
		}
		limit = n
	}

	overview, err := h.finance.Overview(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, toOverviewResponse(overview))
}

// Summary godoc
// @Summary Cash flow summary
// @Description Totals over [from, to). Dates are YYYY-MM-DD in station time or RFC3339. Defaults to today; a lone to covers the day it ends on.
// @Tags finance
// @Produce  json
// @Param   from  query   string  false  "Period start"
// @Param   to    query   string  false  "Period end (a date means the end of that day)"
// @Success 200 {object} dto.FinanceSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /finance/summary [get]
func (h *FinanceHandler) Summary(c echo.Context) error {
	var from, to time.Time
	if raw := c.QueryParam("to"); raw != "" {
		t, dateOnly, err := parseBound(raw)
		if err != nil {
			return badRequest(c, "Invalid to")
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1)
		}
		to = t
	}

	switch raw := c.QueryParam("from"); {
	case raw != "":
		t, _, err := parseBound(raw)
		if err != nil {
			return badRequest(c, "Invalid from")
		}
		from = t
	case !to.IsZero():
		// the day the period ends on
		from = utils.StartOfDay(to.Add(-time.Nanosecond).In(utils.Location(common.DefaultTimeZone)))
	default:
		from = utils.StartOfDay(utils.TimeNowBRT())
	}

	if to.IsZero() {
		to = utils.StartOfDay(from.In(utils.Location(common.DefaultTimeZone))).AddDate(0, 0, 1)
	}

	summary, err := h.finance.Summary(c.Request().Context(), from, to)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, toSummaryResponse(summary))
}

func parseBound(raw string) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(dateLayout, raw, utils.Location(common.DefaultTimeZone)); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	return t, false, err
}
