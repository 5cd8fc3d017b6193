package pricing

import (
	"autorent/internal/domain/catalog"
	"autorent/internal/domain/shared/money"
)

// LocationCharges sums the flat extra charges of both ends of the rental.
func LocationCharges(pickup, dropoff catalog.Location) money.Amount {
	return pickup.ExtraCharge.Add(dropoff.ExtraCharge)
}

// ServiceCharges sums the per-day fees of the selected add-on services over
// the rental length. Callers resolve service IDs beforehand; unknown IDs are
// leniently dropped during resolution and simply never reach this sum.
func ServiceCharges(services []catalog.AdditionalService, days int) money.Amount {
	var total money.Amount
	for _, svc := range services {
		total = total.Add(svc.PricePerDay.MulDays(days))
	}
	return total
}

// WeekendSurcharge is currently disabled: it always resolves to zero but stays
// a named, independently computed line so re-enabling it is a local change.
func WeekendSurcharge(days int, touchesWeekend bool) money.Amount {
	return 0
}

// HolidaySurcharge is currently disabled, mirroring WeekendSurcharge.
func HolidaySurcharge(days int, touchesHoliday bool) money.Amount {
	return 0
}
