package health

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/workdays/workday"
)

// OracleChecker probes the holiday oracle by loading the holiday set for a
// fixed jurisdiction and year. A failing probe means queries with a state
// parameter cannot be served.
type OracleChecker struct {
	source workday.HolidaySource
	state  workday.Jurisdiction
	year   int
}

// NewOracleChecker creates a checker that probes the given holiday source.
func NewOracleChecker(source workday.HolidaySource) *OracleChecker {
	return &OracleChecker{
		source: source,
		state:  workday.NSW,
		year:   time.Now().UTC().Year(),
	}
}

// Name returns the name of this checker.
func (c *OracleChecker) Name() string {
	return "holiday_oracle"
}

// Check performs the probe.
func (c *OracleChecker) Check(ctx context.Context) Result {
	_, err := c.source.Holidays(ctx, c.state, c.year, c.year)
	if err != nil {
		return Unhealthy("holiday oracle probe failed", fmt.Errorf("%w: %w", ErrCheckFailed, err))
	}

	return Healthy("holiday oracle reachable").WithDetails(map[string]any{
		"probe_state": string(c.state),
		"probe_year":  c.year,
	})
}

var _ Checker = (*OracleChecker)(nil)

// CacheStats reports hit, miss and eviction counters for a cache.
type CacheStats interface {
	Stats() (hits, misses, evictions uint64)
	Len() int
	Capacity() int
}

// CacheChecker reports count-cache occupancy and effectiveness. The cache
// cannot fail, so the check is always healthy; it exists to surface the
// counters on the health endpoint.
type CacheChecker struct {
	cache CacheStats
}

// NewCacheChecker creates a checker reporting on the given cache.
func NewCacheChecker(cache CacheStats) *CacheChecker {
	return &CacheChecker{cache: cache}
}

// Name returns the name of this checker.
func (c *CacheChecker) Name() string {
	return "count_cache"
}

// Check reports the cache counters.
func (c *CacheChecker) Check(ctx context.Context) Result {
	hits, misses, evictions := c.cache.Stats()

	return Healthy("count cache operational").WithDetails(map[string]any{
		"entries":   c.cache.Len(),
		"capacity":  c.cache.Capacity(),
		"hits":      hits,
		"misses":    misses,
		"evictions": evictions,
	})
}

var _ Checker = (*CacheChecker)(nil)
