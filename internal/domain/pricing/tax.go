package pricing

import "autorent/internal/domain/shared/money"

// taxRatePct applies to card and online payments; cash settles untaxed.
const taxRatePct = 18

// Taxes computes the tax on the post-discount subtotal for the given payment
// method.
func Taxes(taxable money.Amount, method PaymentMethod) money.Amount {
	if !method.Taxable() {
		return 0
	}
	return taxable.Percent(taxRatePct)
}
