package observe

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// QueryMetrics records metrics for working-days queries. All instruments are
// created once; Record* calls are cheap and safe for concurrent use.
type QueryMetrics struct {
	queries  metric.Int64Counter
	errors   metric.Int64Counter
	duration metric.Float64Histogram
}

// NewQueryMetrics creates the query instruments on the given meter.
func NewQueryMetrics(meter metric.Meter) (*QueryMetrics, error) {
	queries, err := meter.Int64Counter(
		"workdays.query.total",
		metric.WithDescription("Total working-days queries served"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter(
		"workdays.query.errors",
		metric.WithDescription("Total working-days queries that failed"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"workdays.query.duration_ms",
		metric.WithDescription("Working-days query duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &QueryMetrics{
		queries:  queries,
		errors:   errs,
		duration: duration,
	}, nil
}

// RegisterCacheMetrics exposes the count-cache counters on the meter via an
// observable callback, so the counters are read only when scraped.
func RegisterCacheMetrics(meter metric.Meter, stats func() (hits, misses, evictions uint64)) error {
	hits, err := meter.Int64ObservableCounter(
		"workdays.cache.hits",
		metric.WithDescription("Count-cache lookups that hit"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return err
	}

	misses, err := meter.Int64ObservableCounter(
		"workdays.cache.misses",
		metric.WithDescription("Count-cache lookups that missed"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return err
	}

	evictions, err := meter.Int64ObservableCounter(
		"workdays.cache.evictions",
		metric.WithDescription("Count-cache entries evicted"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return err
	}

	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		h, m, e := stats()
		o.ObserveInt64(hits, int64(h))
		o.ObserveInt64(misses, int64(m))
		o.ObserveInt64(evictions, int64(e))
		return nil
	}, hits, misses, evictions)
	return err
}

// RecordQuery records one served query with its route, requested state,
// response status and duration.
func (m *QueryMetrics) RecordQuery(ctx context.Context, route, state string, status int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("route", route),
		attribute.String("state", state),
		attribute.String("status", strconv.Itoa(status)),
	)

	m.queries.Add(ctx, 1, attrs)
	if status >= 400 {
		m.errors.Add(ctx, 1, attrs)
	}
	m.duration.Record(ctx, float64(duration.Microseconds())/1000.0, attrs)
}
