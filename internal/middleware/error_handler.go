package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skyledger/reservation-service/internal/dto"
)

// ErrorHandler is the central echo error handler: every error surfaces as a
// JSON body with a message, never an HTML page.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
