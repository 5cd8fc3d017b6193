package quote

import (
	"context"
	"errors"
	"time"

	"autorent/internal/app/dto"
	"autorent/internal/app/queries"
	"autorent/internal/domain/catalog"
	"autorent/internal/domain/pricing"
	"autorent/internal/domain/rental"
)

const priceQuoteKey = "quote.price"

var ErrPaymentMethodUnknown = errors.New("quote: unknown payment method")

// PriceQuoteQuery asks for an itemized price for a prospective rental. It
// serves both the interactive price preview and the final submission path.
type PriceQuoteQuery struct {
	CarID             string
	Pickup            time.Time
	Dropoff           time.Time
	PickupLocationID  string
	DropoffLocationID string
	ServiceIDs        []string
	DiscountCode      string
	PaymentMethod     string
}

func (q PriceQuoteQuery) Key() string { return priceQuoteKey }

// PriceQuoteResult is the wire-ready breakdown.
type PriceQuoteResult struct {
	Breakdown dto.PriceBreakdown `json:"breakdown"`
}

// PriceQuoteHandler resolves catalog references and runs the pricing engine.
type PriceQuoteHandler struct {
	Cars      catalog.CarRepository
	Locations catalog.LocationRepository
	Services  catalog.ServiceRepository
	Engine    pricing.Calculator

	// Clock is swappable in tests; nil means time.Now.
	Clock func() time.Time
}

func (h *PriceQuoteHandler) Handle(ctx context.Context, q PriceQuoteQuery) (*PriceQuoteResult, error) {
	breakdown, err := h.Price(ctx, q)
	if err != nil {
		return nil, err
	}
	return &PriceQuoteResult{Breakdown: dto.PriceBreakdownFromDomain(breakdown)}, nil
}

// Price resolves references and quotes. The submission handler reuses it to
// get the domain breakdown without the wire wrapper.
func (h *PriceQuoteHandler) Price(ctx context.Context, q PriceQuoteQuery) (pricing.PriceBreakdown, error) {
	method, ok := pricing.ParsePaymentMethod(q.PaymentMethod)
	if !ok {
		return pricing.PriceBreakdown{}, ErrPaymentMethodUnknown
	}

	car, err := h.Cars.ByID(ctx, catalog.CarID(q.CarID))
	if err != nil {
		return pricing.PriceBreakdown{}, err
	}
	pickupLoc, err := h.Locations.ByID(ctx, catalog.LocationID(q.PickupLocationID))
	if err != nil {
		return pricing.PriceBreakdown{}, err
	}
	dropoffLoc, err := h.Locations.ByID(ctx, catalog.LocationID(q.DropoffLocationID))
	if err != nil {
		return pricing.PriceBreakdown{}, err
	}

	// Lenient lookup: unknown service IDs are dropped, never an error.
	services := make([]catalog.AdditionalService, 0, len(q.ServiceIDs))
	for _, id := range q.ServiceIDs {
		svc, err := h.Services.ByID(ctx, catalog.ServiceID(id))
		if errors.Is(err, catalog.ErrNotFound) {
			continue
		}
		if err != nil {
			return pricing.PriceBreakdown{}, err
		}
		services = append(services, *svc)
	}

	now := time.Now().UTC()
	if h.Clock != nil {
		now = h.Clock()
	}

	return h.Engine.Quote(ctx, pricing.QuoteInput{
		Car:             *car,
		Period:          rental.Period{Pickup: q.Pickup, Dropoff: q.Dropoff},
		PickupLocation:  *pickupLoc,
		DropoffLocation: *dropoffLoc,
		Services:        services,
		DiscountCode:    q.DiscountCode,
		PaymentMethod:   method,
		Now:             now,
	})
}

var _ queries.Handler[PriceQuoteQuery, *PriceQuoteResult] = (*PriceQuoteHandler)(nil)
