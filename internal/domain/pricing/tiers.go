package pricing

import (
	"autorent/internal/domain/catalog"
	"autorent/internal/domain/shared/money"
)

// Tier boundaries in days.
const (
	daysPerWeek  = 7
	daysPerMonth = 30
)

// BasePrice converts a day count into the base rental cost by greedy tier
// decomposition, largest unit first. Weekly and monthly rates are per-day
// rates, so a month block costs monthlyRate*30 and a week block weeklyRate*7.
// The decomposition never searches for a cheaper alternative split.
func BasePrice(days int, car catalog.Car) money.Amount {
	if days <= 0 {
		return 0
	}
	switch {
	case days >= daysPerMonth:
		months := days / daysPerMonth
		remainder := days % daysPerMonth
		price := car.MonthlyRate.MulDays(months * daysPerMonth)
		return price.Add(weeksAndDays(remainder, car))
	case days >= daysPerWeek:
		return weeksAndDays(days, car)
	default:
		return car.DailyRate.MulDays(days)
	}
}

// weeksAndDays prices a sub-month remainder as full weeks plus leftover days.
func weeksAndDays(days int, car catalog.Car) money.Amount {
	weeks := days / daysPerWeek
	rest := days % daysPerWeek
	price := car.WeeklyRate.MulDays(weeks * daysPerWeek)
	return price.Add(car.DailyRate.MulDays(rest))
}
