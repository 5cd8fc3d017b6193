package bookingreq

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"autorent/internal/app/commands"
	"autorent/internal/app/dto"
	"autorent/internal/app/handlers/quote"
	"autorent/internal/app/policies"
	"autorent/internal/domain/booking"
	"autorent/internal/domain/pricing"
)

const submitBookingKey = "booking.submit"

var ErrPricerRequired = errors.New("bookingreq: pricer required")

// SubmitBookingCommand finalizes a booking: the request is field-validated
// (the validation middleware gates this command, so pricing never runs for a
// rejected form), priced, and forwarded to the notification collaborator.
type SubmitBookingCommand struct {
	BookingForm
}

func (c SubmitBookingCommand) Key() string { return submitBookingKey }

type SubmitBookingResult struct {
	BookingID string             `json:"booking_id"`
	Breakdown dto.PriceBreakdown `json:"breakdown"`
}

type SubmitBookingHandler struct {
	Pricer   *quote.PriceQuoteHandler
	Notifier policies.Notifier
}

func (h *SubmitBookingHandler) Handle(ctx context.Context, cmd SubmitBookingCommand) (*SubmitBookingResult, error) {
	if h.Pricer == nil {
		return nil, ErrPricerRequired
	}

	breakdown, err := h.Pricer.Price(ctx, quote.PriceQuoteQuery{
		CarID:             cmd.CarID,
		Pickup:            cmd.Pickup,
		Dropoff:           cmd.Dropoff,
		PickupLocationID:  cmd.PickupLocationID,
		DropoffLocationID: cmd.DropoffLocationID,
		ServiceIDs:        cmd.ServiceIDs,
		DiscountCode:      cmd.DiscountCode,
		PaymentMethod:     cmd.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}

	bookingID := uuid.NewString()
	if h.Notifier != nil {
		notice := policies.BookingNotice{
			BookingID:        bookingID,
			Customer:         strings.TrimSpace(cmd.FirstName + " " + cmd.LastName),
			Email:            cmd.Email,
			Phone:            cmd.Phone,
			CarID:            cmd.CarID,
			Pickup:           cmd.Pickup,
			Dropoff:          cmd.Dropoff,
			Price:            breakdown,
			WantsPaymentLink: breakdown.PaymentMethod == pricing.PaymentOnline,
		}
		if err := h.Notifier.BookingQuoted(ctx, notice); err != nil {
			return nil, err
		}
	}

	return &SubmitBookingResult{
		BookingID: bookingID,
		Breakdown: dto.PriceBreakdownFromDomain(breakdown),
	}, nil
}

// RequestValidator adapts the field validator to the command-bus validation
// middleware. Only submissions are gated; the explicit validate command
// reports failures as data instead.
type RequestValidator struct {
	Fields *booking.Validator
}

func (v RequestValidator) Validate(ctx context.Context, message any) error {
	cmd, ok := message.(SubmitBookingCommand)
	if !ok {
		return nil
	}
	if _, errs := v.Fields.Validate(cmd.toDomain()); errs != nil {
		return errs
	}
	return nil
}

var _ commands.Handler[SubmitBookingCommand, *SubmitBookingResult] = (*SubmitBookingHandler)(nil)
