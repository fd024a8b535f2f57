// Package api holds the request and response helpers shared by the
// resource handlers.
package api

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
)

// Ack acknowledges a successful mutation.
type Ack struct {
	Message        string `json:"message"`
	ID             int64  `json:"id,omitempty"`
	PrescriptionID int64  `json:"prescription_id,omitempty"`
}

// PathID parses the positive integer ":id" path parameter.
func PathID(c echo.Context) (int64, error) {
	return parseID("id", c.Param("id"))
}

// QueryID parses an optional positive integer query filter. An absent or
// empty parameter yields nil.
func QueryID(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := parseID(name, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("%s must be a positive integer, got %q", name, raw)
	}
	return id, nil
}

// Bind decodes the JSON request body into dst.
func Bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return apperr.Wrap(err, apperr.KindValidation, "invalid request body: %v", he.Message)
		}
		return apperr.Wrap(err, apperr.KindValidation, "invalid request body")
	}
	return nil
}

// Created builds the acknowledgement for a newly created record.
func Created(entity string, id int64) Ack {
	return Ack{Message: fmt.Sprintf("%s added successfully!", entity), ID: id}
}
