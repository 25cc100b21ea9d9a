package http

import (
	"errors"
	"net/http"
	"strconv"

	"lendhub-backend/internal/domain/errs"

	"github.com/labstack/echo/v4"
)

// retryAfterSeconds is advertised on retryable store failures.
const retryAfterSeconds = 2

// writeError maps the domain taxonomy onto HTTP.
func writeError(c echo.Context, err error) error {
	var e *errs.Error
	if !errors.As(err, &e) {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: string(errs.KindStore)})
	}

	switch e.Kind {
	case errs.KindValidation:
		resp := ErrorResponse{Error: e.Message, Code: string(e.Kind)}
		if e.Field != "" {
			resp.Details = []FieldError{{Field: e.Field, Message: e.Message}}
		}
		return c.JSON(http.StatusUnprocessableEntity, resp)
	case errs.KindNotFound:
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: e.Message, Code: string(e.Kind)})
	default:
		if e.Retryable {
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "storage temporarily unavailable", Code: string(e.Kind)})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: string(e.Kind)})
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg, Code: string(errs.KindValidation)})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Code:    string(errs.KindValidation),
		Details: ToFieldErrors(err),
	})
}
