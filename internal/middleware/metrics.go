package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postify_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// FeedLoads counts feed loads by terminal view state (loaded/empty/failed).
	FeedLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postify_feed_loads_total",
		Help: "Total number of post feed loads by resulting state",
	}, []string{"state"})

	// PostsCreated counts composer submissions by visibility.
	PostsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postify_posts_created_total",
		Help: "Total number of posts created by visibility",
	}, []string{"visibility"})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-instrumentation handler for the app.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
