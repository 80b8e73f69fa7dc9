// Package http exposes the order API over echo.
//
// Every /api/v1 route except order tracking requires HTTP Basic authentication
// against the users table. Authenticated requests are then checked against the
// embedded OpenAPI document before they reach a handler.
package http

import (
	"log/slog"
	"net/http"

	"retail/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries the cross-cutting dependencies of the HTTP layer.
type RouterConfig struct {
	Users   userFinder
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewRouter builds the echo instance with middleware and every route.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	openAPIRouter, err := loadOpenAPIRouter()
	if err != nil {
		return nil, err
	}
	registerSwaggerDoc()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(cfg.Metrics.Middleware())
	e.Use(requestLogger(cfg.Logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	validate := requestValidator(openAPIRouter)
	auth := BasicAuth(cfg.Users)

	api.GET("/orders/track", server.TrackOrder, validate)

	api.GET("/orders", server.ListOrders, auth, validate)
	api.POST("/orders", server.CreateOrder, auth, validate)
	api.GET("/orders/stats", server.GetOrderStats, auth, validate)
	api.GET("/orders/:id", server.GetOrder, auth, validate)
	api.PUT("/orders/:id/status", server.ChangeOrderStatus, auth, validate)
	api.POST("/orders/:id/void", server.VoidOrder, auth, validate)
	api.POST("/customers", server.CreateCustomer, auth, validate)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			logger.InfoContext(c.Request().Context(), "Request handled", attrs...)
			return nil
		},
	})
}
