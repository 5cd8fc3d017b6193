package booking

import (
	"strings"
	"testing"
	"time"

	"autorent/internal/domain/catalog"
	"autorent/internal/domain/pricing"
)

func validRequest() Request {
	return Request{
		FirstName:       "Nino",
		LastName:        "Beridze",
		Email:           "nino.beridze@example.com",
		Phone:           "555 123 456",
		CarID:           "sedan-1",
		Pickup:          time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		Dropoff:         time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC),
		PickupLocation:  "Downtown Office",
		DropoffLocation: "Airport Terminal",
		PaymentMethod:   "cash",
	}
}

func TestValidateAcceptsWellFormedRequest(t *testing.T) {
	parsed, errs := NewValidator().Validate(validRequest())
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if parsed.NormalizedPhone != "+995555123456" {
		t.Fatalf("NormalizedPhone = %q", parsed.NormalizedPhone)
	}
	if parsed.Method != pricing.PaymentCash {
		t.Fatalf("Method = %q", parsed.Method)
	}
}

func TestValidateNames(t *testing.T) {
	cases := []struct {
		name  string
		value string
		kind  Kind
	}{
		{"empty", "", KindRequiredFieldMissing},
		{"single letter", "A", KindInvalidFormat},
		{"digits", "1234", KindInvalidFormat},
		{"mixed letters and digits", "Ann4", KindInvalidFormat},
		{"too long", strings.Repeat("a", 51), KindInvalidFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			req.FirstName = tc.value
			_, errs := NewValidator().Validate(req)
			if !errs.Has("first_name") || !errs.HasKind(tc.kind) {
				t.Fatalf("want %s on first_name, got %v", tc.kind, errs)
			}
		})
	}

	// Unicode letters, apostrophes and hyphens are all fine.
	for _, ok := range []string{"Анна-Мария", "ნინო", "O'Neill", "Éloïse"} {
		req := validRequest()
		req.FirstName = ok
		if _, errs := NewValidator().Validate(req); errs.Has("first_name") {
			t.Errorf("%q should be a valid name: %v", ok, errs)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	bad := []string{"plainaddress", "no@dot", "a b@example.com", "@example.com", "user@.com"}
	for _, value := range bad {
		req := validRequest()
		req.Email = value
		if _, errs := NewValidator().Validate(req); !errs.Has("email") {
			t.Errorf("%q should be rejected", value)
		}
	}

	req := validRequest()
	req.Email = ""
	_, errs := NewValidator().Validate(req)
	if !errs.HasKind(KindRequiredFieldMissing) {
		t.Fatalf("empty email: %v", errs)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare local mobile", "555123456", "+995555123456", true},
		{"leading zero", "0555123456", "+995555123456", true},
		{"formatted local", "555 12-34-56", "+995555123456", true},
		{"already international", "+995555123456", "+995555123456", true},
		{"double zero prefix", "00995555123456", "+995555123456", true},
		{"foreign number", "+14155551234", "+14155551234", true},
		{"too short", "12345", "12345", false},
		{"letters", "call-me", "callme", false},
		{"local landline prefix", "032212345", "+99532212345", true}, // generic international match
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizePhone(tc.in)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("NormalizePhone(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestValidateLocations(t *testing.T) {
	req := validRequest()
	req.PickupLocation = "ab"
	_, errs := NewValidator().Validate(req)
	if !errs.Has("pickup_location") {
		t.Fatalf("short location must fail: %v", errs)
	}

	// Same place on both ends, modulo spacing and case.
	req = validRequest()
	req.PickupLocation = "Airport  Terminal"
	req.DropoffLocation = "airport terminal"
	_, errs = NewValidator().Validate(req)
	if !errs.HasKind(KindSameLocation) {
		t.Fatalf("want SAME_LOCATION, got %v", errs)
	}
}

func TestValidateServicesBound(t *testing.T) {
	req := validRequest()
	for i := 0; i <= maxServices; i++ {
		req.Services = append(req.Services, catalog.ServiceID(strings.Repeat("x", i+1)))
	}
	_, errs := NewValidator().Validate(req)
	if !errs.HasKind(KindTooManyServices) {
		t.Fatalf("want TOO_MANY_SERVICES, got %v", errs)
	}

	req.Services = req.Services[:maxServices]
	if _, errs := NewValidator().Validate(req); errs.HasKind(KindTooManyServices) {
		t.Fatalf("exactly %d services must pass: %v", maxServices, errs)
	}
}

func TestValidatePaymentMethod(t *testing.T) {
	for _, value := range []string{"card", "crypto", "wire"} {
		req := validRequest()
		req.PaymentMethod = value
		_, errs := NewValidator().Validate(req)
		if !errs.HasKind(KindInvalidPaymentMethod) {
			t.Errorf("%q must be rejected on the request: %v", value, errs)
		}
	}
	for _, value := range []string{"cash", "online", "Online"} {
		req := validRequest()
		req.PaymentMethod = value
		if _, errs := NewValidator().Validate(req); errs.HasKind(KindInvalidPaymentMethod) {
			t.Errorf("%q must be accepted: %v", value, errs)
		}
	}
}

func TestValidateSpecialRequest(t *testing.T) {
	req := validRequest()
	req.SpecialRequest = strings.Repeat("a", maxSpecialRequestLen+1)
	_, errs := NewValidator().Validate(req)
	if !errs.Has("special_request") {
		t.Fatalf("overlong text must fail: %v", errs)
	}

	req = validRequest()
	req.SpecialRequest = "please <script>alert(1)</script>"
	_, errs = NewValidator().Validate(req)
	if !errs.HasKind(KindUnsafeContent) {
		t.Fatalf("want UNSAFE_CONTENT, got %v", errs)
	}

	req = validRequest()
	req.SpecialRequest = "child seat on the right side, please"
	if _, errs := NewValidator().Validate(req); errs.Has("special_request") {
		t.Fatalf("benign text must pass: %v", errs)
	}
}

func TestValidateReportsAllErrorsAtOnce(t *testing.T) {
	req := validRequest()
	req.FirstName = ""
	req.Email = "broken"
	req.Phone = "123"
	req.PaymentMethod = "card"
	_, errs := NewValidator().Validate(req)
	for _, field := range []string{"first_name", "email", "phone", "payment_method"} {
		if !errs.Has(field) {
			t.Errorf("missing error for %s in %v", field, errs)
		}
	}
}
