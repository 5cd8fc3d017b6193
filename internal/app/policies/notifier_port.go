package policies

import (
	"context"
	"time"

	"autorent/internal/domain/pricing"
)

// BookingNotice is handed to the external notification collaborator once a
// booking has been validated and priced. Email rendering and payment-link
// generation happen outside this service.
type BookingNotice struct {
	BookingID string
	Customer  string
	Email     string
	Phone     string
	CarID     string
	Pickup    time.Time
	Dropoff   time.Time
	Price     pricing.PriceBreakdown
	// WantsPaymentLink is set for online payments so the downstream consumer
	// can issue a payment link.
	WantsPaymentLink bool
}

// Notifier forwards booking notices to the outside world.
type Notifier interface {
	BookingQuoted(ctx context.Context, notice BookingNotice) error
}
