package bookingreq

import (
	"context"

	"autorent/internal/app/commands"
	"autorent/internal/app/dto"
	"autorent/internal/domain/booking"
)

const validateBookingKey = "booking.validate"

// ValidateBookingCommand runs field validation only, so the form can show
// inline errors before the customer submits.
type ValidateBookingCommand struct {
	BookingForm
}

func (c ValidateBookingCommand) Key() string { return validateBookingKey }

type ValidateBookingResult struct {
	Valid  bool             `json:"valid"`
	Errors []dto.FieldError `json:"errors,omitempty"`
}

type ValidateBookingHandler struct {
	Fields *booking.Validator
}

// Handle reports every field violation at once; an invalid form is a normal
// result here, not an error.
func (h *ValidateBookingHandler) Handle(ctx context.Context, cmd ValidateBookingCommand) (*ValidateBookingResult, error) {
	if _, errs := h.Fields.Validate(cmd.toDomain()); errs != nil {
		return &ValidateBookingResult{Valid: false, Errors: dto.FieldErrorsFromDomain(errs)}, nil
	}
	return &ValidateBookingResult{Valid: true}, nil
}

var _ commands.Handler[ValidateBookingCommand, *ValidateBookingResult] = (*ValidateBookingHandler)(nil)
