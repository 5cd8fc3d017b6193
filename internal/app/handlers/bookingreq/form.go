package bookingreq

import (
	"time"

	"autorent/internal/domain/booking"
	"autorent/internal/domain/catalog"
)

// BookingForm is the customer-facing submission shared by the validate and
// submit commands.
type BookingForm struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string

	CarID   string
	Pickup  time.Time
	Dropoff time.Time

	PickupLocationID  string
	DropoffLocationID string

	ServiceIDs     []string
	DiscountCode   string
	PaymentMethod  string
	SpecialRequest string
}

func (f BookingForm) toDomain() booking.Request {
	services := make([]catalog.ServiceID, 0, len(f.ServiceIDs))
	for _, id := range f.ServiceIDs {
		services = append(services, catalog.ServiceID(id))
	}
	return booking.Request{
		FirstName:       f.FirstName,
		LastName:        f.LastName,
		Email:           f.Email,
		Phone:           f.Phone,
		CarID:           catalog.CarID(f.CarID),
		Pickup:          f.Pickup,
		Dropoff:         f.Dropoff,
		PickupLocation:  f.PickupLocationID,
		DropoffLocation: f.DropoffLocationID,
		Services:        services,
		DiscountCode:    f.DiscountCode,
		PaymentMethod:   f.PaymentMethod,
		SpecialRequest:  f.SpecialRequest,
	}
}
