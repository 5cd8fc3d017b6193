package pricing

import (
	"context"
	"errors"
	"time"

	"autorent/internal/domain/calendar"
	"autorent/internal/domain/catalog"
	"autorent/internal/domain/rental"
)

var ErrUnknownPaymentMethod = errors.New("pricing: unknown payment method")

// QuoteInput carries everything a quote needs. References are already
// resolved: the caller looks up the car, locations and services from the
// catalog (dropping unknown service IDs on the way) before asking for a price.
type QuoteInput struct {
	Car             catalog.Car
	Period          rental.Period
	PickupLocation  catalog.Location
	DropoffLocation catalog.Location
	Services        []catalog.AdditionalService
	DiscountCode    string
	PaymentMethod   PaymentMethod

	// Now fixes "today" for the request so repeated quotes stay identical.
	// Zero means the engine samples the clock once itself.
	Now time.Time
}

// Calculator produces an itemized quote for a rental request.
type Calculator interface {
	Quote(ctx context.Context, input QuoteInput) (PriceBreakdown, error)
}

// Engine runs the full pricing pipeline: period validation, tiered base
// price, surcharges, discount resolution, taxes, assembly. It holds only
// read-only configuration and is safe for concurrent use.
type Engine struct {
	Periods   *rental.Validator
	Discounts DiscountResolver
}

func NewEngine(rules calendar.Rules, codes catalog.DiscountTable) *Engine {
	return &Engine{
		Periods:   rental.NewValidator(rules),
		Discounts: DiscountResolver{Codes: codes},
	}
}

func (e *Engine) Quote(ctx context.Context, in QuoteInput) (PriceBreakdown, error) {
	// Malformed reference data is a programmer/data error, never clamped.
	if err := in.Car.ValidateRates(); err != nil {
		return PriceBreakdown{}, err
	}
	if err := in.PickupLocation.Validate(); err != nil {
		return PriceBreakdown{}, err
	}
	if err := in.DropoffLocation.Validate(); err != nil {
		return PriceBreakdown{}, err
	}
	for _, svc := range in.Services {
		if err := svc.Validate(); err != nil {
			return PriceBreakdown{}, err
		}
	}
	if !in.PaymentMethod.Taxable() && in.PaymentMethod != PaymentCash {
		return PriceBreakdown{}, ErrUnknownPaymentMethod
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	validated, err := e.Periods.Validate(in.Period, now)
	if err != nil {
		return PriceBreakdown{}, err
	}

	base := BasePrice(validated.Days, in.Car)
	locations := LocationCharges(in.PickupLocation, in.DropoffLocation)
	services := ServiceCharges(in.Services, validated.Days)
	weekend := WeekendSurcharge(validated.Days, validated.TouchesWeekend)
	holiday := HolidaySurcharge(validated.Days, validated.TouchesHoliday)

	subtotal := base.Add(locations).Add(services).Add(weekend).Add(holiday)
	discounts := e.Discounts.Resolve(subtotal, in.DiscountCode, validated.Days)
	taxes := Taxes(subtotal.Sub(discounts), in.PaymentMethod)

	return PriceBreakdown{
		Days:             validated.Days,
		BasePrice:        base,
		LocationCharges:  locations,
		ServiceCharges:   services,
		WeekendSurcharge: weekend,
		HolidaySurcharge: holiday,
		Discounts:        discounts,
		Subtotal:         subtotal,
		Taxes:            taxes,
		Total:            subtotal.Sub(discounts).Add(taxes),
		Deposit:          in.Car.Deposit,
		PaymentMethod:    in.PaymentMethod,
	}, nil
}

var _ Calculator = (*Engine)(nil)
