package pricing

import (
	"errors"

	"autorent/internal/domain/shared/money"
)

var ErrBreakdownMismatch = errors.New("pricing: breakdown parts do not reconcile to total")

// PriceBreakdown is the fully itemized outcome of a quote. It is a value: once
// assembled it is never mutated, and identical inputs assemble bit-identical
// breakdowns.
type PriceBreakdown struct {
	Days             int
	BasePrice        money.Amount
	LocationCharges  money.Amount
	ServiceCharges   money.Amount
	WeekendSurcharge money.Amount
	HolidaySurcharge money.Amount
	Discounts        money.Amount
	Subtotal         money.Amount
	Taxes            money.Amount
	Total            money.Amount
	Deposit          money.Amount
	PaymentMethod    PaymentMethod
}

// Reconcile verifies the sum of parts against the stored subtotal and total.
func (p PriceBreakdown) Reconcile() error {
	subtotal := p.BasePrice.
		Add(p.LocationCharges).
		Add(p.ServiceCharges).
		Add(p.WeekendSurcharge).
		Add(p.HolidaySurcharge)
	if subtotal != p.Subtotal {
		return ErrBreakdownMismatch
	}
	if p.Subtotal.Sub(p.Discounts).Add(p.Taxes) != p.Total {
		return ErrBreakdownMismatch
	}
	return nil
}
