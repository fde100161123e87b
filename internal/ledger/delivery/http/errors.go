package http

import (
	"net/http"
	"strconv"

	"posto-ledger/internal/ledger/dto"
	"posto-ledger/internal/ledger/service"
	"posto-ledger/pkg/logger"

	"github.com/labstack/echo/v4"
)

func statusFor(code string) int {
	switch code {
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeInvalidInput, service.CodeInvalidReference:
		return http.StatusBadRequest
	case service.CodeInsufficientStock:
		return http.StatusUnprocessableEntity
	case service.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Internal errors are logged and
// their message is not exposed.
func respondError(c echo.Context, log *logger.Logger, err error) error {
	code := service.ErrorCode(err)
	status := statusFor(code)
	if status == http.StatusInternalServerError {
		log.ErrorContext(c.Request().Context(), "Request failed",
			logger.ErrorField(err),
			logger.StringField("method", c.Request().Method),
			logger.StringField("path", c.Path()))
		return c.JSON(status, dto.ErrorResponse{Error: "internal server error", Code: code})
	}
	return c.JSON(status, dto.ErrorResponse{Error: err.Error(), Code: code})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Code: service.CodeInvalidInput})
}

func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
