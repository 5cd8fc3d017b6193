package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"autorent/internal/app/commands"
	bookingapp "autorent/internal/app/handlers/bookingreq"
)

type BookingHandler struct {
	Commands commands.Bus
}

type bookingRequest struct {
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	CarID             string    `json:"car_id"`
	Pickup            time.Time `json:"pickup"`
	Dropoff           time.Time `json:"dropoff"`
	PickupLocationID  string    `json:"pickup_location_id"`
	DropoffLocationID string    `json:"dropoff_location_id"`
	ServiceIDs        []string  `json:"service_ids"`
	DiscountCode      string    `json:"discount_code"`
	PaymentMethod     string    `json:"payment_method"`
	SpecialRequest    string    `json:"special_request"`
}

func (r bookingRequest) toForm() bookingapp.BookingForm {
	return bookingapp.BookingForm{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Email:             r.Email,
		Phone:             r.Phone,
		CarID:             r.CarID,
		Pickup:            r.Pickup,
		Dropoff:           r.Dropoff,
		PickupLocationID:  r.PickupLocationID,
		DropoffLocationID: r.DropoffLocationID,
		ServiceIDs:        r.ServiceIDs,
		DiscountCode:      r.DiscountCode,
		PaymentMethod:     r.PaymentMethod,
		SpecialRequest:    r.SpecialRequest,
	}
}

// Validate runs field validation only and always answers 200; an invalid form
// is data for the UI, not a transport failure.
func (h BookingHandler) Validate(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := bookingapp.ValidateBookingCommand{BookingForm: req.toForm()}
	result, err := commands.Dispatch[bookingapp.ValidateBookingCommand, *bookingapp.ValidateBookingResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h BookingHandler) Submit(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := bookingapp.SubmitBookingCommand{BookingForm: req.toForm()}
	result, err := commands.Dispatch[bookingapp.SubmitBookingCommand, *bookingapp.SubmitBookingResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

var _ BookingHTTP = BookingHandler{}
