package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"autorent/internal/domain/calendar"
	"autorent/internal/domain/catalog"
	"autorent/internal/domain/rental"
	"autorent/internal/domain/shared/money"
)

var quoteNow = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func quoteDay(offset int) time.Time {
	return time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func newTestEngine() *Engine {
	rules := calendar.Rules{Holidays: calendar.NewHolidayCalendar([]string{"01-01", "03-08"})}
	codes := catalog.NewDiscountTable([]catalog.DiscountCode{
		{Code: "SUMMER20", Percentage: 20, MaxAmount: money.FromCents(100000)},
	})
	return NewEngine(rules, codes)
}

func baseInput(days int) QuoteInput {
	return QuoteInput{
		Car:             testCar(),
		Period:          rental.Period{Pickup: quoteDay(1), Dropoff: quoteDay(1 + days)},
		PickupLocation:  catalog.Location{ID: "downtown", Name: "Downtown"},
		DropoffLocation: catalog.Location{ID: "airport", Name: "Airport"},
		PaymentMethod:   PaymentCash,
		Now:             quoteNow,
	}
}

// Three days at the daily rate, paid cash: no taxes, total equals base.
func TestQuoteThreeDaysCash(t *testing.T) {
	e := newTestEngine()
	got, err := e.Quote(context.Background(), baseInput(3))
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if got.Days != 3 {
		t.Fatalf("Days = %d", got.Days)
	}
	if got.BasePrice != money.FromCents(15000) {
		t.Fatalf("BasePrice = %s, want 150.00", got.BasePrice)
	}
	if got.Taxes != 0 {
		t.Fatalf("cash must be untaxed, got %s", got.Taxes)
	}
	if got.Total != money.FromCents(15000) {
		t.Fatalf("Total = %s, want 150.00", got.Total)
	}
	if err := got.Reconcile(); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
}

// Ten days paid online: one week block plus three daily days, then 18% tax.
func TestQuoteTenDaysOnline(t *testing.T) {
	e := newTestEngine()
	in := baseInput(10)
	in.PaymentMethod = PaymentOnline
	got, err := e.Quote(context.Background(), in)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if got.BasePrice != money.FromCents(46500) {
		t.Fatalf("BasePrice = %s, want 465.00", got.BasePrice)
	}
	if got.Taxes != money.FromCents(8370) {
		t.Fatalf("Taxes = %s, want 83.70", got.Taxes)
	}
	if got.Total != money.FromCents(54870) {
		t.Fatalf("Total = %s, want 548.70", got.Total)
	}
}

// Thirty-five days with no code: the 5% long-rental discount kicks in.
func TestQuoteLongRentalAutomaticDiscount(t *testing.T) {
	e := newTestEngine()
	got, err := e.Quote(context.Background(), baseInput(35))
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	wantBase := money.FromCents(30*3000 + 5*5000)
	if got.BasePrice != wantBase {
		t.Fatalf("BasePrice = %s, want %s", got.BasePrice, wantBase)
	}
	if got.Discounts != got.Subtotal.Percent(5) {
		t.Fatalf("Discounts = %s, want 5%% of %s", got.Discounts, got.Subtotal)
	}
	if err := got.Reconcile(); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
}

func TestQuoteAddsLocationAndServiceCharges(t *testing.T) {
	e := newTestEngine()
	in := baseInput(3)
	in.PickupLocation.ExtraCharge = money.FromCents(2000)
	in.DropoffLocation.ExtraCharge = money.FromCents(2500)
	in.Services = []catalog.AdditionalService{
		{ID: "gps", PricePerDay: money.FromCents(500)},
	}
	got, err := e.Quote(context.Background(), in)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if got.LocationCharges != money.FromCents(4500) {
		t.Fatalf("LocationCharges = %s", got.LocationCharges)
	}
	if got.ServiceCharges != money.FromCents(1500) {
		t.Fatalf("ServiceCharges = %s", got.ServiceCharges)
	}
	if got.Subtotal != money.FromCents(15000+4500+1500) {
		t.Fatalf("Subtotal = %s", got.Subtotal)
	}
}

func TestQuoteDepositInvariance(t *testing.T) {
	e := newTestEngine()
	variants := []QuoteInput{
		baseInput(3),
		baseInput(35),
		baseInput(90),
	}
	variants[1].PaymentMethod = PaymentOnline
	variants[2].DiscountCode = "SUMMER20"
	variants[2].PaymentMethod = PaymentCard

	for i, in := range variants {
		got, err := e.Quote(context.Background(), in)
		if err != nil {
			t.Fatalf("variant %d: %v", i, err)
		}
		if got.Deposit != in.Car.Deposit {
			t.Fatalf("variant %d: deposit %s drifted from configured %s", i, got.Deposit, in.Car.Deposit)
		}
	}
}

func TestQuoteIsIdempotent(t *testing.T) {
	e := newTestEngine()
	in := baseInput(10)
	in.PaymentMethod = PaymentOnline
	in.DiscountCode = "SUMMER20"

	first, err := e.Quote(context.Background(), in)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	second, err := e.Quote(context.Background(), in)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if first != second {
		t.Fatalf("identical inputs produced different breakdowns:\n%+v\n%+v", first, second)
	}
}

func TestQuoteRejectsMalformedData(t *testing.T) {
	e := newTestEngine()

	in := baseInput(3)
	in.Car.DailyRate = money.FromCents(-1)
	if _, err := e.Quote(context.Background(), in); !errors.Is(err, catalog.ErrNegativeRate) {
		t.Fatalf("negative rate: got %v", err)
	}

	in = baseInput(3)
	in.Services = []catalog.AdditionalService{
		{ID: "gps", PricePerDay: money.FromCents(-10000)},
	}
	if _, err := e.Quote(context.Background(), in); !errors.Is(err, catalog.ErrNegativeCharge) {
		t.Fatalf("negative service price: got %v", err)
	}

	in = baseInput(3)
	in.PaymentMethod = "crypto"
	if _, err := e.Quote(context.Background(), in); !errors.Is(err, ErrUnknownPaymentMethod) {
		t.Fatalf("unknown payment method: got %v", err)
	}

	in = baseInput(3)
	in.Period.Dropoff = in.Period.Pickup
	if _, err := e.Quote(context.Background(), in); !errors.Is(err, rental.ErrInvalidDateOrder) {
		t.Fatalf("date order: got %v", err)
	}
}
