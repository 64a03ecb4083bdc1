package workday

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"
)

// HolidaySet answers membership questions over a jurisdiction's public
// holidays. Sets are produced by a HolidaySource per query and are not
// mutated by this package.
type HolidaySet interface {
	// Contains reports whether d is a public holiday.
	Contains(d Date) bool
}

// HolidaySource is the external holiday calendar oracle.
//
// Contract:
//   - Given a jurisdiction and an inclusive span of years, the returned set
//     must answer membership correctly for that jurisdiction's gazetted
//     public holidays in those years.
//   - Implementations must be safe for concurrent use.
//   - Swapping implementations must not change the behavior of any other
//     component beyond the holiday dates themselves.
type HolidaySource interface {
	Holidays(ctx context.Context, state Jurisdiction, firstYear, lastYear int) (HolidaySet, error)
}

// CountCache is a bounded associative store for memoized tallies.
//
// Contract:
//   - Implementations must be safe for concurrent use.
//   - Writes to the same key are idempotent: a key always maps to the same
//     tally, so racing writers can at worst recompute, never corrupt.
type CountCache interface {
	Get(key string) (int, bool)
	Set(key string, value int)
}

// Keyer derives the memoization key for a query from its canonical string
// fields. Implementations must be deterministic.
type Keyer interface {
	Key(fields ...string) string
}

// Default span of years the engine answers for. Queries outside the span
// fail with ErrUnsupportedYearRange rather than treating unknown years as
// holiday-free.
const (
	DefaultFirstYear = 2000
	DefaultLastYear  = 2049
)

// EngineConfig configures an Engine.
type EngineConfig struct {
	// FirstYear and LastYear bound the supported query span, inclusive.
	// Defaults: 2000 and 2049.
	FirstYear int
	LastYear  int
}

// Engine classifies dates and aggregates working-day results for validated
// queries. The only state it carries across calls is the injected count
// cache; Count and List are otherwise pure.
type Engine struct {
	source HolidaySource
	counts CountCache
	keyer  Keyer
	group  singleflight.Group

	firstYear  int
	lastYear   int
	spanDetail string
}

// NewEngine creates an Engine backed by the given holiday source.
//
// counts may be nil, which disables memoization. keyer may be nil, in which
// case a plain concatenation of the query fields is used.
func NewEngine(source HolidaySource, counts CountCache, keyer Keyer, config ...EngineConfig) *Engine {
	cfg := EngineConfig{FirstYear: DefaultFirstYear, LastYear: DefaultLastYear}
	if len(config) > 0 {
		cfg = config[0]
		if cfg.FirstYear == 0 {
			cfg.FirstYear = DefaultFirstYear
		}
		if cfg.LastYear == 0 {
			cfg.LastYear = DefaultLastYear
		}
	}

	return &Engine{
		source:    source,
		counts:    counts,
		keyer:     keyer,
		firstYear: cfg.FirstYear,
		lastYear:  cfg.LastYear,
		spanDetail: fmt.Sprintf(
			"Dates must fall within the supported years %d to %d", cfg.FirstYear, cfg.LastYear),
	}
}

// IsWorkingDay reports whether d is a weekday that is not a public holiday
// in the given jurisdiction. With JurisdictionNone only the weekday rule
// applies.
func (e *Engine) IsWorkingDay(ctx context.Context, d Date, state Jurisdiction) (bool, error) {
	if err := e.checkSpan(d, d); err != nil {
		return false, err
	}
	if !d.IsWeekday() {
		return false, nil
	}
	holidays, err := e.holidaySet(ctx, state)
	if err != nil {
		return false, err
	}
	return !holidays.Contains(d), nil
}

// Count tallies the working days from q.Start to q.End inclusive.
//
// Results are memoized per (start, end, jurisdiction) in the injected cache;
// concurrent identical queries share a single computation. The cache never
// survives a process restart.
func (e *Engine) Count(ctx context.Context, q Query) (int, error) {
	if err := e.checkSpan(q.Start, q.End); err != nil {
		return 0, err
	}

	key := e.queryKey(q)
	if e.counts != nil {
		if n, ok := e.counts.Get(key); ok {
			return n, nil
		}
	}

	v, err, _ := e.group.Do(key, func() (any, error) {
		n, err := e.tally(ctx, q)
		if err != nil {
			return 0, err
		}
		if e.counts != nil {
			e.counts.Set(key, n)
		}
		return n, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// List returns the working days from q.Start to q.End inclusive, ascending
// with no duplicates. This path is never cached: lists are larger and less
// reusable than tallies, so every call computes fresh.
func (e *Engine) List(ctx context.Context, q Query) ([]Date, error) {
	if err := e.checkSpan(q.Start, q.End); err != nil {
		return nil, err
	}
	holidays, err := e.holidaySet(ctx, q.State)
	if err != nil {
		return nil, err
	}

	days := make([]Date, 0)
	for d := q.Start; !d.After(q.End); d = d.Next() {
		if d.IsWeekday() && !holidays.Contains(d) {
			days = append(days, d)
		}
	}
	return days, nil
}

func (e *Engine) tally(ctx context.Context, q Query) (int, error) {
	holidays, err := e.holidaySet(ctx, q.State)
	if err != nil {
		return 0, err
	}

	n := 0
	for d := q.Start; !d.After(q.End); d = d.Next() {
		if d.IsWeekday() && !holidays.Contains(d) {
			n++
		}
	}
	return n, nil
}

// holidaySet obtains the jurisdiction's holidays for the full supported
// span. The span is fixed per engine, so sources can reuse their own cached
// materialization instead of rebuilding per query.
func (e *Engine) holidaySet(ctx context.Context, state Jurisdiction) (HolidaySet, error) {
	if state == JurisdictionNone {
		return emptySet{}, nil
	}
	return e.source.Holidays(ctx, state, e.firstYear, e.lastYear)
}

func (e *Engine) checkSpan(start, end Date) error {
	if start.Year < e.firstYear || end.Year > e.lastYear {
		return newValidationError(ErrUnsupportedYearRange, e.spanDetail)
	}
	return nil
}

func (e *Engine) queryKey(q Query) string {
	if e.keyer != nil {
		return e.keyer.Key(q.Start.String(), q.End.String(), string(q.State))
	}
	return q.Start.String() + "|" + q.End.String() + "|" + string(q.State)
}

// emptySet is the holiday set used when no jurisdiction was supplied.
type emptySet struct{}

func (emptySet) Contains(Date) bool { return false }
