package holiday

import (
	"context"
	"fmt"
	"sync"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/au"

	"github.com/jonwraymond/workdays/workday"
)

// Calendar is a HolidaySource backed by the rickar/cal rule engine, using
// the library's gazetted per-jurisdiction holiday sets. One calendar is
// built per jurisdiction and reused for the life of the source.
type Calendar struct {
	mu   sync.Mutex
	cals map[workday.Jurisdiction]*cal.Calendar
}

// NewCalendar creates a Calendar source covering all eight jurisdictions.
func NewCalendar() *Calendar {
	return &Calendar{cals: make(map[workday.Jurisdiction]*cal.Calendar)}
}

// Holidays returns the membership set for state. The year span is ignored:
// rule-based calendars can evaluate any year, and the engine enforces its
// own supported span. With JurisdictionNone the set holds the national
// holidays only.
func (c *Calendar) Holidays(_ context.Context, state workday.Jurisdiction, _, _ int) (workday.HolidaySet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	calendar, ok := c.cals[state]
	if !ok {
		var err error
		calendar, err = buildCalendar(state)
		if err != nil {
			return nil, err
		}
		c.cals[state] = calendar
	}
	return &calendarSet{cal: calendar}, nil
}

// stateHolidays maps each jurisdiction to the library's holiday set.
var stateHolidays = map[workday.Jurisdiction][]*cal.Holiday{
	workday.ACT: au.HolidaysACT,
	workday.NSW: au.HolidaysNSW,
	workday.NT:  au.HolidaysNT,
	workday.QLD: au.HolidaysQLD,
	workday.SA:  au.HolidaysSA,
	workday.TAS: au.HolidaysTAS,
	workday.VIC: au.HolidaysVIC,
	workday.WA:  au.HolidaysWA,
}

// nationalHolidays are the days gazetted in every jurisdiction, serving the
// no-jurisdiction calendar.
var nationalHolidays = []*cal.Holiday{
	au.NewYear,
	au.AustraliaDay,
	au.GoodFriday,
	au.EasterMonday,
	au.AnzacDay,
	au.ChristmasDay,
	au.BoxingDay,
}

func buildCalendar(state workday.Jurisdiction) (*cal.Calendar, error) {
	calendar := &cal.Calendar{
		Name:      "Australia/" + string(state),
		Cacheable: true,
	}

	if state == workday.JurisdictionNone {
		calendar.Name = "Australia"
		calendar.AddHoliday(nationalHolidays...)
		return calendar, nil
	}

	days, ok := stateHolidays[state]
	if !ok {
		return nil, fmt.Errorf("holiday: no calendar for jurisdiction %q", state)
	}
	calendar.AddHoliday(days...)
	return calendar, nil
}

// calendarSet adapts a cal.Calendar to membership testing. A date is a
// member when it is either the actual or the observed day of a holiday, so
// weekend substitute days are excluded from working days as gazetted.
type calendarSet struct {
	cal *cal.Calendar
}

func (s *calendarSet) Contains(d workday.Date) bool {
	actual, observed, _ := s.cal.IsHoliday(d.Time())
	return actual || observed
}

// Ensure Calendar implements the oracle interface
var _ workday.HolidaySource = (*Calendar)(nil)
