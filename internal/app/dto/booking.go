package dto

import "autorent/internal/domain/booking"

// FieldError mirrors a single field validation failure for inline form
// display.
type FieldError struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// FieldErrorsFromDomain converts the collected validator output.
func FieldErrorsFromDomain(errs booking.FieldErrors) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		out = append(out, FieldError{Field: fe.Field, Kind: string(fe.Kind), Message: fe.Message})
	}
	return out
}

// Car is the catalog wire form of a vehicle's pricing facet.
type Car struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DailyRateCents   int64  `json:"daily_rate_cents"`
	WeeklyRateCents  int64  `json:"weekly_rate_cents"`
	MonthlyRateCents int64  `json:"monthly_rate_cents"`
	DepositCents     int64  `json:"deposit_cents"`
}

// Location is the catalog wire form of a pickup/drop-off point.
type Location struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ExtraChargeCents int64  `json:"extra_charge_cents"`
}

// AdditionalService is the catalog wire form of an add-on.
type AdditionalService struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	PricePerDayCents int64  `json:"price_per_day_cents"`
}
