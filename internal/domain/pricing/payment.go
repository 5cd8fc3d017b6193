package pricing

import "strings"

// PaymentMethod is the closed set of ways a booking can be paid. Card settles
// through the same online rails, so the tax stage treats it like online.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentOnline PaymentMethod = "online"
)

// ParsePaymentMethod normalizes a raw method string.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(raw))) {
	case PaymentCash:
		return PaymentCash, true
	case PaymentCard:
		return PaymentCard, true
	case PaymentOnline:
		return PaymentOnline, true
	default:
		return "", false
	}
}

// Taxable reports whether tax applies to this method.
func (m PaymentMethod) Taxable() bool {
	return m == PaymentCard || m == PaymentOnline
}
