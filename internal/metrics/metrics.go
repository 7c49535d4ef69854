// Package metrics holds the Prometheus collectors of the ordering service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "food_order",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "food_order",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	favoriteToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "food_order",
			Subsystem: "favorites",
			Name:      "toggles_total",
			Help:      "Settled favourite toggles by target state and outcome.",
		},
		[]string{"target", "outcome"},
	)

	ordersSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "food_order",
			Subsystem: "orders",
			Name:      "submitted_total",
			Help:      "Order submissions by outcome.",
		},
		[]string{"outcome"},
	)

	draftSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "food_order",
			Subsystem: "drafts",
			Name:      "active_sessions",
			Help:      "Order drafts currently held in memory.",
		},
	)
)

func init() {
	Registry.MustRegister(httpRequests, httpDuration, favoriteToggles, ordersSubmitted, draftSessions)
}

// Outcome turns an error into the "success"/"failure" label.
func Outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

// RecordFavoriteToggle counts one settled toggle.
func RecordFavoriteToggle(target string, err error) {
	favoriteToggles.WithLabelValues(target, Outcome(err)).Inc()
}

// RecordOrderSubmit counts one submission attempt.
func RecordOrderSubmit(err error) {
	ordersSubmitted.WithLabelValues(Outcome(err)).Inc()
}

// SetDraftSessions reports how many drafts are held.
func SetDraftSessions(n int) {
	draftSessions.Set(float64(n))
}

// Middleware records request count and latency per route pattern.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		method := utils.CopyString(c.Method())
		httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler exposes the registry on a fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
