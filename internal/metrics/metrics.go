package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "sampleapp/internal/errors"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	// Domain events
	SignupsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "signups_total",
			Help: "Total accounts created through signup",
		},
	)
	SignInsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signins_total",
			Help: "Sign-in attempts by outcome",
		},
		[]string{"outcome"}, // success|failure
	)
	FollowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "follow_changes_total",
			Help: "Follow graph mutations",
		},
		[]string{"action"}, // follow|unfollow
	)
	PostsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "microposts_created_total",
			Help: "Total microposts created",
		},
	)

	registerOnce sync.Once
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

// Init registers every collector with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestLatency,
			SignupsTotal,
			SignInsTotal,
			FollowsTotal,
			PostsTotal,
		)
	})
}

// unmatchedRoute is the route label for requests that matched no route.
const unmatchedRoute = "unmatched"

// Middleware records request counts and latency per matched route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = apperrors.MapErrorToHTTP(err).StatusCode
				}
			}
			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			labels := []string{route, c.Request().Method, strconv.Itoa(status)}
			RequestsTotal.WithLabelValues(labels...).Inc()
			RequestLatency.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
