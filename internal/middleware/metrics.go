package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chesnokuz_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// PostViews counts recorded post views.
	PostViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chesnokuz_post_views_total",
		Help: "Total number of post detail views recorded",
	})

	// LikeEvents counts like/unlike events by action.
	LikeEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chesnokuz_like_events_total",
		Help: "Total number of like and unlike events",
	}, []string{"action"})

	// SearchTerms counts recorded fuzzy-lookup search terms.
	SearchTerms = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chesnokuz_search_terms_total",
		Help: "Total number of user search terms recorded",
	})
)

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics returns the Prometheus middleware for the given service name.
// The instance is created once; fiberprometheus registers its collectors on
// the default registry and a second registration would panic.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.New(serviceName)
	})
	return promInstance
}

// MetricsMiddleware returns the request-duration/requests-in-flight middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
