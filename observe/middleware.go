package observe

import (
	"net/http"
	"time"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware wraps an http.Handler with tracing, metrics and access logging
// for a single route.
func Middleware(obs Observer, metrics *QueryMetrics, route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx, span := StartRequestSpan(r.Context(), obs.Tracer(), r.Method, route)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		elapsed := time.Since(start)
		EndRequestSpan(span, rec.status)

		state := r.URL.Query().Get("state")
		if metrics != nil {
			metrics.RecordQuery(ctx, route, state, rec.status, elapsed)
		}

		logger := obs.Logger()
		fields := []Field{
			String("method", r.Method),
			String("route", route),
			String("state", state),
			Int("status", rec.status),
			Duration("duration_ms", elapsed),
		}
		if rec.status >= 500 {
			logger.Error(ctx, "request failed", fields...)
		} else {
			logger.Info(ctx, "request served", fields...)
		}
	})
}
