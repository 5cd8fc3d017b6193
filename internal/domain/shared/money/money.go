package money

import (
	"fmt"
	"math"
)

// Amount keeps monetary values in integer cents to avoid floating point drift.
// The storefront operates in a single currency, so no currency code travels
// with the value.
type Amount int64

// FromCents wraps a raw cent count.
func FromCents(v int64) Amount {
	return Amount(v)
}

// FromFloat converts a decimal currency value into cents, rounding half away
// from zero.
func FromFloat(v float64) Amount {
	return Amount(math.Round(v * 100))
}

// Cents returns the raw cent count.
func (a Amount) Cents() int64 {
	return int64(a)
}

// Float returns the value in whole currency units.
func (a Amount) Float() float64 {
	return float64(a) / 100
}

// Add returns the sum of two amounts.
func (a Amount) Add(other Amount) Amount {
	return a + other
}

// Sub subtracts other from the receiver.
func (a Amount) Sub(other Amount) Amount {
	return a - other
}

// MulDays multiplies a per-day amount by a day count.
func (a Amount) MulDays(days int) Amount {
	return a * Amount(days)
}

// Percent returns p percent of the amount, rounded half away from zero.
func (a Amount) Percent(p float64) Amount {
	return Amount(math.Round(float64(a) * p / 100))
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a < 0
}

// IsZero reports whether the amount equals zero.
func (a Amount) IsZero() bool {
	return a == 0
}

// Max returns the larger of two amounts.
func Max(a, b Amount) Amount {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two amounts.
func Min(a, b Amount) Amount {
	if a < b {
		return a
	}
	return b
}

// String renders the amount with two decimal places.
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
