package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
)

// ErrorBody is the JSON payload of every error response.
type ErrorBody struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorHandler renders apperr kinds, echo HTTP errors and deadline errors as
// ErrorBody. Server-side failures are logged with their cause.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err)
		body.RequestID, _ = c.Get("request_id").(string)

		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).
				Str("request_id", body.RequestID).
				Str("kind", body.Kind).
				Msg("request failed")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, body)
		}
		if werr != nil {
			logger.Error().Err(werr).Msg("write error response")
		}
	}
}

func resolveError(err error) (int, ErrorBody) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return apperr.HTTPStatus(appErr.Kind), ErrorBody{Error: appErr.Msg, Kind: string(appErr.Kind)}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		body := ErrorBody{Error: fmt.Sprint(he.Message)}
		switch he.Code {
		case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
			body.Kind = string(apperr.KindValidation)
		case http.StatusNotFound:
			body.Kind = string(apperr.KindNotFound)
		}
		return he.Code, body
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, ErrorBody{Error: "request timed out"}
	}

	return http.StatusInternalServerError, ErrorBody{Error: "internal server error", Kind: string(apperr.KindInternal)}
}
