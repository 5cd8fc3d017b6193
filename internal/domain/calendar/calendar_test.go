package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWeekend(t *testing.T) {
	cases := []struct {
		day  time.Time
		want bool
	}{
		{date(2026, time.March, 2), false},  // Monday
		{date(2026, time.March, 6), false},  // Friday
		{date(2026, time.March, 7), true},   // Saturday
		{date(2026, time.March, 8), true},   // Sunday
		{date(2026, time.March, 9), false},  // Monday
	}
	for _, tc := range cases {
		if got := IsWeekend(tc.day); got != tc.want {
			t.Errorf("IsWeekend(%s) = %v, want %v", tc.day.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestHolidayCalendarRecursAnnually(t *testing.T) {
	rules := Rules{Holidays: NewHolidayCalendar([]string{"01-01", "12-31", "05-26"})}

	if !rules.IsHoliday(date(2026, time.January, 1)) {
		t.Error("expected 2026-01-01 to be a holiday")
	}
	if !rules.IsHoliday(date(2031, time.January, 1)) {
		t.Error("holidays must recur regardless of year")
	}
	if rules.IsHoliday(date(2026, time.January, 2)) {
		t.Error("2026-01-02 is not configured")
	}
}

func TestNewHolidayCalendarDropsMalformedEntries(t *testing.T) {
	cal := NewHolidayCalendar([]string{"01-01", "bogus", "1-1", "", " 12-31 "})
	if cal.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cal.Len())
	}
	if !cal.Contains(date(2026, time.December, 31)) {
		t.Error("trimmed entry should survive")
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"three whole days", date(2026, time.March, 2), date(2026, time.March, 5), 3},
		{"partial day rounds up", date(2026, time.March, 2), date(2026, time.March, 4).Add(6 * time.Hour), 3},
		{"same instant", date(2026, time.March, 2), date(2026, time.March, 2), 0},
		{"reversed", date(2026, time.March, 5), date(2026, time.March, 2), 0},
		{"across month boundary", date(2026, time.January, 30), date(2026, time.March, 1), 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.start, tc.end); got != tc.want {
				t.Fatalf("DaysBetween = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSpanTouches(t *testing.T) {
	rules := Rules{Holidays: NewHolidayCalendar([]string{"03-08"})}

	// Mon..Fri, no weekend.
	if SpanTouchesWeekend(date(2026, time.March, 2), 5) {
		t.Error("Mon-Fri span should not touch a weekend")
	}
	// Mon..Sat.
	if !SpanTouchesWeekend(date(2026, time.March, 2), 6) {
		t.Error("span ending Saturday should touch the weekend")
	}
	if !rules.SpanTouchesHoliday(date(2026, time.March, 6), 3) {
		t.Error("span covering 03-08 should touch the holiday")
	}
	if rules.SpanTouchesHoliday(date(2026, time.March, 9), 3) {
		t.Error("span after 03-08 should not touch the holiday")
	}
}
