package rental

import (
	"errors"
	"testing"
	"time"

	"autorent/internal/domain/calendar"
)

var now = time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC) // Monday

func day(offset int) time.Time {
	return time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func newTestValidator() *Validator {
	return NewValidator(calendar.Rules{Holidays: calendar.NewHolidayCalendar([]string{"03-08"})})
}

func TestValidateHappyPath(t *testing.T) {
	v := newTestValidator()
	got, err := v.Validate(Period{Pickup: day(1), Dropoff: day(4)}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Days != 3 {
		t.Fatalf("Days = %d, want 3", got.Days)
	}
	if got.TouchesWeekend {
		t.Error("Tue-Fri rental should not touch a weekend")
	}
	if got.TouchesHoliday {
		t.Error("rental before 03-08 should not touch a holiday")
	}
}

func TestValidateFlagsAreInformational(t *testing.T) {
	v := newTestValidator()
	got, err := v.Validate(Period{Pickup: day(4), Dropoff: day(8)}, now) // Fri..Tue, covers Sat+Sun+03-08
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.TouchesWeekend || !got.TouchesHoliday {
		t.Fatalf("expected weekend and holiday flags, got %+v", got)
	}
}

func TestValidateViolations(t *testing.T) {
	v := newTestValidator()
	cases := []struct {
		name   string
		period Period
		want   error
	}{
		{"pickup in past", Period{Pickup: day(-1), Dropoff: day(3)}, ErrDateInPast},
		{"pickup too far ahead", Period{Pickup: day(400), Dropoff: day(403)}, ErrDateTooFarFuture},
		{"dropoff before pickup", Period{Pickup: day(5), Dropoff: day(3)}, ErrInvalidDateOrder},
		{"dropoff equals pickup", Period{Pickup: day(5), Dropoff: day(5)}, ErrInvalidDateOrder},
		{"single day", Period{Pickup: day(1), Dropoff: day(2)}, ErrBelowMinimumDays},
		{"over a year long", Period{Pickup: day(1), Dropoff: day(370)}, ErrAboveMaximumDays},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Validate(tc.period, now)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidateCollectsMultipleViolations(t *testing.T) {
	v := newTestValidator()
	_, err := v.Validate(Period{Pickup: day(-2), Dropoff: day(-1)}, now)
	if !errors.Is(err, ErrDateInPast) {
		t.Errorf("missing %v in %v", ErrDateInPast, err)
	}
	if !errors.Is(err, ErrBelowMinimumDays) {
		t.Errorf("missing %v in %v", ErrBelowMinimumDays, err)
	}
}

func TestValidatePickupTodayIsAllowed(t *testing.T) {
	v := newTestValidator()
	if _, err := v.Validate(Period{Pickup: day(0), Dropoff: day(3)}, now); err != nil {
		t.Fatalf("pickup today must be allowed: %v", err)
	}
}
