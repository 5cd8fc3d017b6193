package booking

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"autorent/internal/domain/pricing"
)

const (
	minNameLen = 2
	maxNameLen = 50

	minLocationLen = 3
	maxLocationLen = 100

	maxServices          = 10
	maxSpecialRequestLen = 500
)

// Phone normalization targets the local numbering plan: nine-digit local
// numbers, mobile numbers starting with 5, country code +995. Anything else
// must hold up as a generic international number.
const (
	countryCode   = "+995"
	localPhoneLen = 9
)

var (
	// Unicode-aware: letters and combining marks plus space, hyphen and
	// apostrophe. Bare digits never pass.
	nameRe = regexp.MustCompile(`^[\p{L}\p{M}][\p{L}\p{M} '-]*$`)

	// Conservative address grammar; the mandatory dot keeps bare hostnames out.
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`)

	localMobileRe   = regexp.MustCompile(`^\+9955[0-9]{8}$`)
	internationalRe = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

	phoneStripRe = regexp.MustCompile(`[\s()-]`)
	digitsRe     = regexp.MustCompile(`^[0-9]+$`)
)

// unsafeFragments is a minimal content filter for the free-text field, not a
// sanitizer: submissions carrying obvious markup are rejected outright.
var unsafeFragments = []string{
	"<script", "</script", "<iframe", "javascript:", "onerror=", "onload=", "srcdoc=",
}

// Validator performs field-level validation of a booking request. It is
// stateless and safe for concurrent use.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks every field independently and reports all violations at
// once. On success the returned Parsed carries normalized values.
func (v *Validator) Validate(req Request) (Parsed, FieldErrors) {
	var errs FieldErrors
	add := func(field string, kind Kind, msg string) {
		errs = append(errs, FieldError{Field: field, Kind: kind, Message: msg})
	}

	validateName(&errs, "first_name", req.FirstName)
	validateName(&errs, "last_name", req.LastName)

	if strings.TrimSpace(req.Email) == "" {
		add("email", KindRequiredFieldMissing, "email is required")
	} else if !emailRe.MatchString(strings.TrimSpace(req.Email)) {
		add("email", KindInvalidFormat, "email address is not valid")
	}

	normalizedPhone := ""
	if strings.TrimSpace(req.Phone) == "" {
		add("phone", KindRequiredFieldMissing, "phone is required")
	} else {
		phone, ok := NormalizePhone(req.Phone)
		if !ok {
			add("phone", KindInvalidFormat, "phone number is not valid")
		}
		normalizedPhone = phone
	}

	validateLocation(&errs, "pickup_location", req.PickupLocation)
	validateLocation(&errs, "dropoff_location", req.DropoffLocation)
	if !errs.Has("pickup_location") && !errs.Has("dropoff_location") {
		if canonicalLocation(req.PickupLocation) == canonicalLocation(req.DropoffLocation) {
			add("dropoff_location", KindSameLocation, "pickup and drop-off locations must differ")
		}
	}

	if len(req.Services) > maxServices {
		add("services", KindTooManyServices, "too many additional services selected")
	}

	var method pricing.PaymentMethod
	if strings.TrimSpace(req.PaymentMethod) == "" {
		add("payment_method", KindRequiredFieldMissing, "payment method is required")
	} else {
		parsed, ok := pricing.ParsePaymentMethod(req.PaymentMethod)
		// Customers choose cash or online on the form; card settles through
		// the online flow and is not offered as a request value.
		if !ok || parsed == pricing.PaymentCard {
			add("payment_method", KindInvalidPaymentMethod, "payment method must be cash or online")
		}
		method = parsed
	}

	validateSpecialRequest(&errs, req.SpecialRequest)

	if len(errs) > 0 {
		return Parsed{}, errs
	}
	return Parsed{Request: req, NormalizedPhone: normalizedPhone, Method: method}, nil
}

func validateName(errs *FieldErrors, field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		*errs = append(*errs, FieldError{Field: field, Kind: KindRequiredFieldMissing, Message: "name is required"})
		return
	}
	n := utf8.RuneCountInString(value)
	if n < minNameLen || n > maxNameLen || !nameRe.MatchString(value) {
		*errs = append(*errs, FieldError{Field: field, Kind: KindInvalidFormat, Message: "name must be 2-50 letters"})
	}
}

func validateLocation(errs *FieldErrors, field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		*errs = append(*errs, FieldError{Field: field, Kind: KindRequiredFieldMissing, Message: "location is required"})
		return
	}
	n := utf8.RuneCountInString(value)
	if n < minLocationLen || n > maxLocationLen {
		*errs = append(*errs, FieldError{Field: field, Kind: KindInvalidFormat, Message: "location must be 3-100 characters"})
	}
}

func validateSpecialRequest(errs *FieldErrors, value string) {
	if utf8.RuneCountInString(value) > maxSpecialRequestLen {
		*errs = append(*errs, FieldError{Field: "special_request", Kind: KindInvalidFormat, Message: "special request is too long"})
		return
	}
	lower := strings.ToLower(value)
	for _, fragment := range unsafeFragments {
		if strings.Contains(lower, fragment) {
			*errs = append(*errs, FieldError{Field: "special_request", Kind: KindUnsafeContent, Message: "special request contains unsafe content"})
			return
		}
	}
}

// NormalizePhone strips formatting and rewrites local spellings into the
// international form: a leading 0 becomes the country code, and a bare
// nine-digit local number gets the country code prepended.
func NormalizePhone(raw string) (string, bool) {
	phone := phoneStripRe.ReplaceAllString(strings.TrimSpace(raw), "")
	if strings.HasPrefix(phone, "00") {
		phone = "+" + phone[2:]
	}
	if strings.HasPrefix(phone, "0") && digitsRe.MatchString(phone[1:]) {
		phone = countryCode + phone[1:]
	} else if digitsRe.MatchString(phone) && len(phone) == localPhoneLen {
		phone = countryCode + phone
	}
	if localMobileRe.MatchString(phone) || internationalRe.MatchString(phone) {
		return phone, true
	}
	return phone, false
}

func canonicalLocation(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}
