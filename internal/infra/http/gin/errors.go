package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"autorent/internal/app/dto"
	"autorent/internal/domain/booking"
	"autorent/internal/domain/catalog"
	"autorent/internal/domain/rental"
)

// respondError maps engine failures onto HTTP statuses. Field validation
// failures carry the full error list so the form can highlight every field in
// one round trip.
func respondError(c *gin.Context, err error) {
	var fieldErrs booking.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": dto.FieldErrorsFromDomain(fieldErrs)})
		return
	}
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if isRentalPeriodError(err) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func isRentalPeriodError(err error) bool {
	for _, target := range []error{
		rental.ErrDateInPast,
		rental.ErrDateTooFarFuture,
		rental.ErrInvalidDateOrder,
		rental.ErrBelowMinimumDays,
		rental.ErrAboveMaximumDays,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
