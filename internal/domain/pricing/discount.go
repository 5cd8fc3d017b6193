package pricing

import (
	"autorent/internal/domain/catalog"
	"autorent/internal/domain/shared/money"
)

// Automatic long-duration discount tiers.
const (
	longRentalDays     = 30
	veryLongRentalDays = 60

	longRentalPct     = 5
	veryLongRentalPct = 10
)

// DiscountResolver turns an optional promotional code and the rental length
// into a single discount amount against the subtotal.
type DiscountResolver struct {
	Codes catalog.DiscountTable
}

// Resolve computes the applicable discount. A supplied code yields
// min(subtotal*pct, cap); long rentals earn an automatic percentage. The two
// candidates never stack: the larger one wins outright. An unknown code is not
// an error, it just contributes zero.
func (r DiscountResolver) Resolve(subtotal money.Amount, code string, days int) money.Amount {
	var codeDiscount money.Amount
	if entry, ok := r.Codes.Lookup(code); ok {
		codeDiscount = money.Min(subtotal.Percent(entry.Percentage), entry.MaxAmount)
	}
	return money.Max(codeDiscount, automaticDiscount(subtotal, days))
}

func automaticDiscount(subtotal money.Amount, days int) money.Amount {
	switch {
	case days >= veryLongRentalDays:
		return subtotal.Percent(veryLongRentalPct)
	case days >= longRentalDays:
		return subtotal.Percent(longRentalPct)
	default:
		return 0
	}
}
