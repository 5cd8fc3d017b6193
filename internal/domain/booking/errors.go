package booking

import (
	"fmt"
	"strings"
)

// Kind tags a field validation failure so UIs can react per error class
// instead of parsing messages.
type Kind string

const (
	KindRequiredFieldMissing Kind = "REQUIRED_FIELD_MISSING"
	KindInvalidFormat        Kind = "INVALID_FORMAT"
	KindSameLocation         Kind = "SAME_LOCATION"
	KindTooManyServices      Kind = "TOO_MANY_SERVICES"
	KindUnsafeContent        Kind = "UNSAFE_CONTENT"
	KindInvalidPaymentMethod Kind = "INVALID_PAYMENT_METHOD"
)

// FieldError points at a single offending request field.
type FieldError struct {
	Field   string
	Kind    Kind
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("booking: %s: %s", e.Field, e.Message)
}

// FieldErrors carries every violation found in one validation pass, so a form
// can highlight all offending fields in a single round trip.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any error targets the given field.
func (e FieldErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// HasKind reports whether any error carries the given kind.
func (e FieldErrors) HasKind(kind Kind) bool {
	for _, fe := range e {
		if fe.Kind == kind {
			return true
		}
	}
	return false
}
