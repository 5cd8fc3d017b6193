package catalog

import (
	"context"
	"errors"
	"strings"

	"autorent/internal/domain/shared/money"
)

var (
	// ErrNotFound marks a reference-data lookup miss; storage backends wrap it.
	ErrNotFound        = errors.New("catalog: entry not found")
	ErrNegativeRate    = errors.New("catalog: car rates cannot be negative")
	ErrNegativeCharge  = errors.New("catalog: charges cannot be negative")
	ErrPercentageRange = errors.New("catalog: discount percentage must be within 0..100")
)

type CarID string
type LocationID string
type ServiceID string

// Car carries the pricing facet of a vehicle. Weekly and monthly rates are
// per-day rates that apply once the rental reaches the matching tier. Deposit
// is a fixed amount configured per car, never derived.
type Car struct {
	ID          CarID
	Name        string
	DailyRate   money.Amount
	WeeklyRate  money.Amount
	MonthlyRate money.Amount
	Deposit     money.Amount
}

// ValidateRates fails loudly on malformed rate data rather than clamping.
func (c Car) ValidateRates() error {
	if c.DailyRate.IsNegative() || c.WeeklyRate.IsNegative() || c.MonthlyRate.IsNegative() {
		return ErrNegativeRate
	}
	if c.Deposit.IsNegative() {
		return ErrNegativeCharge
	}
	return nil
}

// Location is a pickup/drop-off point with a flat extra charge applied when it
// is used on either end of the rental.
type Location struct {
	ID          LocationID
	Name        string
	ExtraCharge money.Amount
}

func (l Location) Validate() error {
	if l.ExtraCharge.IsNegative() {
		return ErrNegativeCharge
	}
	return nil
}

// AdditionalService is an add-on billed per rental day.
type AdditionalService struct {
	ID          ServiceID
	Name        string
	PricePerDay money.Amount
}

func (s AdditionalService) Validate() error {
	if s.PricePerDay.IsNegative() {
		return ErrNegativeCharge
	}
	return nil
}

// DiscountCode is a promotional code granting a percentage off the subtotal,
// capped at MaxAmount.
type DiscountCode struct {
	Code       string
	Percentage float64
	MaxAmount  money.Amount
}

func (d DiscountCode) Validate() error {
	if d.Percentage < 0 || d.Percentage > 100 {
		return ErrPercentageRange
	}
	if d.MaxAmount.IsNegative() {
		return ErrNegativeCharge
	}
	return nil
}

// DiscountTable is a read-only lookup of promotional codes keyed by their
// uppercased form. It is injected into the pricing engine rather than living
// as module state so environments and tests can swap it freely.
type DiscountTable struct {
	codes map[string]DiscountCode
}

// NewDiscountTable normalizes and indexes the provided codes. Codes failing
// validation are dropped.
func NewDiscountTable(codes []DiscountCode) DiscountTable {
	index := make(map[string]DiscountCode, len(codes))
	for _, code := range codes {
		key := NormalizeCode(code.Code)
		if key == "" || code.Validate() != nil {
			continue
		}
		code.Code = key
		index[key] = code
	}
	return DiscountTable{codes: index}
}

// Lookup resolves a code case-insensitively.
func (t DiscountTable) Lookup(code string) (DiscountCode, bool) {
	c, ok := t.codes[NormalizeCode(code)]
	return c, ok
}

// Len returns the number of known codes.
func (t DiscountTable) Len() int {
	return len(t.codes)
}

// NormalizeCode uppercases and trims a promotional code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type CarRepository interface {
	ByID(ctx context.Context, id CarID) (*Car, error)
	List(ctx context.Context) ([]*Car, error)
}

type LocationRepository interface {
	ByID(ctx context.Context, id LocationID) (*Location, error)
	List(ctx context.Context) ([]*Location, error)
}

type ServiceRepository interface {
	ByID(ctx context.Context, id ServiceID) (*AdditionalService, error)
	List(ctx context.Context) ([]*AdditionalService, error)
}
