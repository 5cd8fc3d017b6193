package calendar

import (
	"math"
	"strings"
	"time"
)

// HolidayCalendar is a read-only table of recurring holidays keyed by their
// "MM-DD" month-day. Entries carry no year, so every holiday repeats annually.
type HolidayCalendar struct {
	days map[string]struct{}
}

// NewHolidayCalendar builds a calendar from month-day strings such as "01-01"
// or "12-31". Malformed entries are dropped.
func NewHolidayCalendar(monthDays []string) HolidayCalendar {
	days := make(map[string]struct{}, len(monthDays))
	for _, raw := range monthDays {
		key := strings.TrimSpace(raw)
		if len(key) != 5 || key[2] != '-' {
			continue
		}
		days[key] = struct{}{}
	}
	return HolidayCalendar{days: days}
}

// Contains reports whether the date's month-day is a holiday.
func (h HolidayCalendar) Contains(t time.Time) bool {
	_, ok := h.days[t.UTC().Format("01-02")]
	return ok
}

// Len returns the number of configured holidays.
func (h HolidayCalendar) Len() int {
	return len(h.days)
}

// Rules bundles the calendar predicates the rental validator needs.
type Rules struct {
	Holidays HolidayCalendar
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.UTC().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether the date matches a configured holiday.
func (r Rules) IsHoliday(t time.Time) bool {
	return r.Holidays.Contains(t)
}

// DaysBetween returns the whole-day span from start to end using ceiling
// semantics: any partial day counts as a full day. Returns 0 when end does not
// lie after start.
func DaysBetween(start, end time.Time) int {
	diff := end.UTC().Sub(start.UTC())
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// SpanTouchesWeekend reports whether any day in [start, start+days) is a
// weekend day.
func SpanTouchesWeekend(start time.Time, days int) bool {
	day := midnightUTC(start)
	for i := 0; i < days; i++ {
		if IsWeekend(day) {
			return true
		}
		day = day.AddDate(0, 0, 1)
	}
	return false
}

// SpanTouchesHoliday reports whether any day in [start, start+days) is a
// holiday under the rules.
func (r Rules) SpanTouchesHoliday(start time.Time, days int) bool {
	day := midnightUTC(start)
	for i := 0; i < days; i++ {
		if r.IsHoliday(day) {
			return true
		}
		day = day.AddDate(0, 0, 1)
	}
	return false
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
