package rental

import (
	"errors"
	"time"

	"autorent/internal/domain/calendar"
)

var (
	ErrDateInPast       = errors.New("rental: pickup date is in the past")
	ErrDateTooFarFuture = errors.New("rental: pickup date is more than a year ahead")
	ErrInvalidDateOrder = errors.New("rental: drop-off must be after pickup")
	ErrBelowMinimumDays = errors.New("rental: below minimum rental period")
	ErrAboveMaximumDays = errors.New("rental: above maximum rental period")
)

const (
	MinRentalDays = 2
	MaxRentalDays = 365
)

// horizon limits how far ahead a pickup may be booked.
const horizon = 365 * 24 * time.Hour

// Period is a pickup/drop-off pair at day granularity.
type Period struct {
	Pickup  time.Time
	Dropoff time.Time
}

// Days returns the whole-day length of the period, any partial day counting as
// a full one.
func (p Period) Days() int {
	return calendar.DaysBetween(p.Pickup, p.Dropoff)
}

// Validated is the outcome of a successful period check. The weekend/holiday
// flags are informational only and do not change the price today.
type Validated struct {
	Days           int
	TouchesWeekend bool
	TouchesHoliday bool
}

// Validator enforces the temporal booking constraints.
type Validator struct {
	Rules calendar.Rules
}

func NewValidator(rules calendar.Rules) *Validator {
	return &Validator{Rules: rules}
}

// Validate checks the period against "now" and collects every independently
// checkable violation so callers can surface them all at once. The returned
// error joins the individual violations; errors.Is matches each.
func (v *Validator) Validate(p Period, now time.Time) (Validated, error) {
	today := midnight(now)
	pickup := midnight(p.Pickup)

	var violations []error
	if pickup.Before(today) {
		violations = append(violations, ErrDateInPast)
	}
	if pickup.After(today.Add(horizon)) {
		violations = append(violations, ErrDateTooFarFuture)
	}
	if !p.Dropoff.After(p.Pickup) {
		violations = append(violations, ErrInvalidDateOrder)
		return Validated{}, errors.Join(violations...)
	}

	days := p.Days()
	if days < MinRentalDays {
		violations = append(violations, ErrBelowMinimumDays)
	}
	if days > MaxRentalDays {
		violations = append(violations, ErrAboveMaximumDays)
	}
	if len(violations) > 0 {
		return Validated{}, errors.Join(violations...)
	}

	return Validated{
		Days:           days,
		TouchesWeekend: calendar.SpanTouchesWeekend(p.Pickup, days),
		TouchesHoliday: v.Rules.SpanTouchesHoliday(p.Pickup, days),
	}, nil
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
