package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"retail/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NewErrorHandler maps domain errors to status codes and writes them as Error bodies:
// validation 400, not found 404, invalid transition and conflict 409, anything else 500.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := classify(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}

func classify(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict, err.Error()
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
