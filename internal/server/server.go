// Package server assembles the echo instance: middleware chain, central
// error handler and the resource routes.
package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/pharmacy/pharmacy/internal/domain/customer"
	"github.com/pharmacy/pharmacy/internal/domain/medicine"
	"github.com/pharmacy/pharmacy/internal/domain/order"
	"github.com/pharmacy/pharmacy/internal/domain/prescription"
	"github.com/pharmacy/pharmacy/internal/platform/db"
	"github.com/pharmacy/pharmacy/internal/platform/middleware"
	"github.com/pharmacy/pharmacy/internal/platform/openapi"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

type Options struct {
	CORSOrigins    []string
	RateLimit      middleware.RateLimitConfig
	RequestTimeout time.Duration
	// BodyLimit uses echo's size syntax, e.g. "1M". Empty disables the limit.
	BodyLimit string
}

// Stores is the persistence backend shared by every service.
type Stores struct {
	Customers     customer.Repository
	Prescriptions prescription.Repository
	Orders        order.Repository
	Medicines     medicine.Repository
	Tx            db.TxRunner
}

// New builds the HTTP server. health serves GET /health.
func New(opts Options, stores Stores, health echo.HandlerFunc, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, middleware.RequestIDHeader},
	}))
	if opts.BodyLimit != "" {
		e.Use(echomw.BodyLimit(opts.BodyLimit))
	}
	e.Use(middleware.RequestTimeout(opts.RequestTimeout))

	e.GET("/health", health)

	api := e.Group("")
	if opts.RateLimit.RequestsPerSecond > 0 {
		api.Use(middleware.RateLimit(opts.RateLimit))
	}

	customerSvc := customer.NewService(stores.Customers, logger)
	customer.NewHandler(customerSvc).RegisterRoutes(api)

	prescriptionSvc := prescription.NewService(stores.Prescriptions, logger)
	prescription.NewHandler(prescriptionSvc).RegisterRoutes(api)

	orderSvc := order.NewService(stores.Orders, stores.Prescriptions, stores.Customers, stores.Tx, logger)
	order.NewHandler(orderSvc).RegisterRoutes(api)

	medicineSvc := medicine.NewService(stores.Medicines, stores.Orders, logger)
	medicine.NewHandler(medicineSvc).RegisterRoutes(api)

	openapi.NewGenerator("Pharmacy Operations API", Version, apiResources()...).RegisterRoutes(e)

	return e
}

// StaticHealth reports the server as up without probing a database. It
// serves the in-memory store.
func StaticHealth(store string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": Version,
			"store":   store,
		})
	}
}
