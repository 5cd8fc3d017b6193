package pricing

import (
	"testing"

	"autorent/internal/domain/catalog"
	"autorent/internal/domain/shared/money"
)

func testResolver() DiscountResolver {
	return DiscountResolver{Codes: catalog.NewDiscountTable([]catalog.DiscountCode{
		{Code: "SUMMER20", Percentage: 20, MaxAmount: money.FromCents(100000)},
		{Code: "TINY1", Percentage: 1, MaxAmount: money.FromCents(100000)},
		{Code: "CAPPED50", Percentage: 50, MaxAmount: money.FromCents(2000)},
	})}
}

func TestResolveDiscount(t *testing.T) {
	r := testResolver()
	subtotal := money.FromCents(100000) // 1000.00

	cases := []struct {
		name string
		code string
		days int
		want money.Amount
	}{
		{"no code short rental", "", 10, 0},
		{"code only", "SUMMER20", 10, money.FromCents(20000)},
		{"code is case-insensitive", "summer20", 10, money.FromCents(20000)},
		{"unknown code contributes zero", "NOPE", 10, 0},
		{"automatic 5 percent from 30 days", "", 30, money.FromCents(5000)},
		{"automatic 5 percent below 60 days", "", 59, money.FromCents(5000)},
		{"automatic 10 percent from 60 days", "", 60, money.FromCents(10000)},
		{"cap limits the code discount", "CAPPED50", 10, money.FromCents(2000)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Resolve(subtotal, tc.code, tc.days); got != tc.want {
				t.Fatalf("Resolve(%q, %d days) = %s, want %s", tc.code, tc.days, got, tc.want)
			}
		})
	}
}

// The two discount sources never stack: the larger candidate wins outright.
// A future switch to stacking has to change this test.
func TestResolveDiscount_BestWinsNeverStacks(t *testing.T) {
	r := testResolver()
	subtotal := money.FromCents(100000)

	// Weak code on a very long rental: the automatic 10% must win and the
	// result must not be 10% + 1%.
	got := r.Resolve(subtotal, "TINY1", 60)
	if got != money.FromCents(10000) {
		t.Fatalf("Resolve = %s, want automatic 10%% to override the weaker code", got)
	}

	// Strong code on a long rental: the code must win, again without summing.
	got = r.Resolve(subtotal, "SUMMER20", 60)
	if got != money.FromCents(20000) {
		t.Fatalf("Resolve = %s, want the stronger code to override", got)
	}

	// Capped code that ends up below the automatic tier.
	got = r.Resolve(subtotal, "CAPPED50", 60)
	if got != money.FromCents(10000) {
		t.Fatalf("Resolve = %s, want the automatic discount over the capped code", got)
	}
}
