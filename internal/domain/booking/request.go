package booking

import (
	"time"

	"autorent/internal/domain/catalog"
	"autorent/internal/domain/pricing"
)

// Request is the full customer booking submission as it arrives from the
// storefront, before any pricing runs.
type Request struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string

	CarID   catalog.CarID
	Pickup  time.Time
	Dropoff time.Time

	PickupLocation  string
	DropoffLocation string

	Services     []catalog.ServiceID
	DiscountCode string

	PaymentMethod  string
	SpecialRequest string
}

// Parsed is a request that passed field validation, with normalized values
// filled in.
type Parsed struct {
	Request
	NormalizedPhone string
	Method          pricing.PaymentMethod
}
