package api

import (
	"net/http"

	"github.com/jonwraymond/workdays/auth"
	"github.com/jonwraymond/workdays/health"
	"github.com/jonwraymond/workdays/observe"
)

// RouterConfig wires the cross-cutting concerns around the query handlers.
// Zero-value fields disable the corresponding concern.
type RouterConfig struct {
	// Observer instruments the query routes. Nil disables instrumentation.
	Observer observe.Observer

	// Metrics records per-query counters. Nil disables them.
	Metrics *observe.QueryMetrics

	// Authenticators guard the query routes. Empty leaves them anonymous.
	Authenticators []auth.Authenticator

	// RateLimit throttles the query routes. Nil disables throttling.
	RateLimit *RateLimitConfig

	// Health serves the probe endpoints. Nil disables them.
	Health *health.Aggregator

	// MetricsHandler serves GET /metrics. Nil disables the endpoint.
	MetricsHandler http.Handler
}

// NewRouter builds the service mux. Query routes are wrapped, outermost
// first, with instrumentation, rate limiting and authentication; probe and
// metrics endpoints stay unauthenticated so orchestrators can reach them.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /working-days", wrap(cfg, "/working-days", http.HandlerFunc(h.Count)))
	mux.Handle("GET /working-days-list", wrap(cfg, "/working-days-list", http.HandlerFunc(h.List)))

	if cfg.Health != nil {
		health.RegisterHandlers(mux, cfg.Health)
	}
	if cfg.MetricsHandler != nil {
		mux.Handle("GET /metrics", cfg.MetricsHandler)
	}

	return mux
}

func wrap(cfg RouterConfig, route string, handler http.Handler) http.Handler {
	handler = auth.Middleware(cfg.Authenticators, handler)
	if cfg.RateLimit != nil {
		handler = RateLimit(*cfg.RateLimit, handler)
	}
	if cfg.Observer != nil {
		handler = observe.Middleware(cfg.Observer, cfg.Metrics, route, handler)
	}
	return handler
}
