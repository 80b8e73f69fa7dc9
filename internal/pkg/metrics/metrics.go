// Package metrics exposes Prometheus collectors for the HTTP API, status
// transitions, notification delivery and the background jobs.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"retail/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "retail"

type Metrics struct {
	gatherer prometheus.Gatherer

	requests            *prometheus.CounterVec
	latency             *prometheus.HistogramVec
	transitions         *prometheus.CounterVec
	notificationsFailed prometheus.Counter
	ordersExpired       prometheus.Counter
}

// New creates the collectors and registers them on registry.
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_transitions_total",
			Help:      "Committed order status transitions.",
		}, []string{"from", "to"}),
		notificationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Notifications that could not be delivered.",
		}),
		ordersExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pending_orders_expired_total",
			Help:      "Pending web orders cancelled by the expiry job.",
		}),
	}

	registry.MustRegister(m.requests, m.latency, m.transitions, m.notificationsFailed, m.ordersExpired)
	return m
}

func (m *Metrics) TransitionApplied(from, to order.Status) {
	m.transitions.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Metrics) NotificationFailed() {
	m.notificationsFailed.Inc()
}

func (m *Metrics) OrdersExpired(n int) {
	m.ordersExpired.Add(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware counts requests by route template, so /orders/1 and /orders/2
// share one series.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// The error handler writes the response, so the final status is
			// only known after it ran.
			if err := next(c); err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.requests.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
			m.latency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
