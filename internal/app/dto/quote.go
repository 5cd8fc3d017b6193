package dto

import "autorent/internal/domain/pricing"

// PriceBreakdown is the wire form of a quote. Monetary fields are integer
// cents; the rendering layer owns display formatting.
type PriceBreakdown struct {
	Days                  int    `json:"days"`
	BasePriceCents        int64  `json:"base_price_cents"`
	LocationChargesCents  int64  `json:"location_charges_cents"`
	ServiceChargesCents   int64  `json:"service_charges_cents"`
	WeekendSurchargeCents int64  `json:"weekend_surcharge_cents"`
	HolidaySurchargeCents int64  `json:"holiday_surcharge_cents"`
	DiscountsCents        int64  `json:"discounts_cents"`
	SubtotalCents         int64  `json:"subtotal_cents"`
	TaxesCents            int64  `json:"taxes_cents"`
	TotalCents            int64  `json:"total_cents"`
	DepositCents          int64  `json:"deposit_cents"`
	PaymentMethod         string `json:"payment_method"`
}

// PriceBreakdownFromDomain flattens the domain breakdown for the wire.
func PriceBreakdownFromDomain(p pricing.PriceBreakdown) PriceBreakdown {
	return PriceBreakdown{
		Days:                  p.Days,
		BasePriceCents:        p.BasePrice.Cents(),
		LocationChargesCents:  p.LocationCharges.Cents(),
		ServiceChargesCents:   p.ServiceCharges.Cents(),
		WeekendSurchargeCents: p.WeekendSurcharge.Cents(),
		HolidaySurchargeCents: p.HolidaySurcharge.Cents(),
		DiscountsCents:        p.Discounts.Cents(),
		SubtotalCents:         p.Subtotal.Cents(),
		TaxesCents:            p.Taxes.Cents(),
		TotalCents:            p.Total.Cents(),
		DepositCents:          p.Deposit.Cents(),
		PaymentMethod:         string(p.PaymentMethod),
	}
}
