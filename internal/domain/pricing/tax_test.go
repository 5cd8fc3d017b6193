package pricing

import (
	"testing"

	"autorent/internal/domain/shared/money"
)

func TestTaxesByPaymentMethod(t *testing.T) {
	taxable := money.FromCents(46500) // 465.00

	cases := []struct {
		method PaymentMethod
		want   money.Amount
	}{
		{PaymentCash, 0},
		{PaymentCard, money.FromCents(8370)},
		{PaymentOnline, money.FromCents(8370)},
	}
	for _, tc := range cases {
		t.Run(string(tc.method), func(t *testing.T) {
			if got := Taxes(taxable, tc.method); got != tc.want {
				t.Fatalf("Taxes(%s, %s) = %s, want %s", taxable, tc.method, got, tc.want)
			}
		})
	}
}

func TestParsePaymentMethod(t *testing.T) {
	if m, ok := ParsePaymentMethod(" Online "); !ok || m != PaymentOnline {
		t.Fatalf("ParsePaymentMethod(online) = %q, %v", m, ok)
	}
	if m, ok := ParsePaymentMethod("CASH"); !ok || m != PaymentCash {
		t.Fatalf("ParsePaymentMethod(cash) = %q, %v", m, ok)
	}
	if _, ok := ParsePaymentMethod("crypto"); ok {
		t.Fatal("unknown method must not parse")
	}
}
