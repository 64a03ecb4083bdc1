package health

import (
	"context"
	"errors"
	"testing"

	"github.com/jonwraymond/workdays/cache"
	"github.com/jonwraymond/workdays/workday"
)

type fakeSource struct {
	err   error
	calls int
}

type emptySet struct{}

func (emptySet) Contains(workday.Date) bool { return false }

func (s *fakeSource) Holidays(ctx context.Context, state workday.Jurisdiction, firstYear, lastYear int) (workday.HolidaySet, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return emptySet{}, nil
}

func TestOracleCheckerHealthy(t *testing.T) {
	src := &fakeSource{}
	checker := NewOracleChecker(src)

	result := checker.Check(context.Background())
	if result.Status != StatusHealthy {
		t.Fatalf("status = %v, want healthy", result.Status)
	}
	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}
	if result.Details["probe_state"] != "NSW" {
		t.Errorf("probe_state = %v, want NSW", result.Details["probe_state"])
	}
}

func TestOracleCheckerUnhealthy(t *testing.T) {
	probeErr := errors.New("database is locked")
	checker := NewOracleChecker(&fakeSource{err: probeErr})

	result := checker.Check(context.Background())
	if result.Status != StatusUnhealthy {
		t.Fatalf("status = %v, want unhealthy", result.Status)
	}
	if !errors.Is(result.Error, ErrCheckFailed) {
		t.Errorf("error = %v, want wrapped %v", result.Error, ErrCheckFailed)
	}
	if !errors.Is(result.Error, probeErr) {
		t.Errorf("error = %v, want wrapped probe error", result.Error)
	}
}

func TestCacheChecker(t *testing.T) {
	lru := cache.NewLRU(10)
	lru.Set("a", 1)
	lru.Get("a")
	lru.Get("b")

	checker := NewCacheChecker(lru)
	result := checker.Check(context.Background())

	if result.Status != StatusHealthy {
		t.Fatalf("status = %v, want healthy", result.Status)
	}
	if result.Details["entries"] != 1 {
		t.Errorf("entries = %v, want 1", result.Details["entries"])
	}
	if result.Details["capacity"] != 10 {
		t.Errorf("capacity = %v, want 10", result.Details["capacity"])
	}
	if result.Details["hits"] != uint64(1) {
		t.Errorf("hits = %v, want 1", result.Details["hits"])
	}
	if result.Details["misses"] != uint64(1) {
		t.Errorf("misses = %v, want 1", result.Details["misses"])
	}
}
