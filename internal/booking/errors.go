package booking

import (
	"errors"
	"strings"
)

var (
	// ErrNameRequired is returned when the name is blank.
	ErrNameRequired = errors.New("name is required")

	// ErrEmailRequired is returned when the email is blank.
	ErrEmailRequired = errors.New("email is required")

	// ErrInvalidEmail is returned when the email does not parse as an address.
	ErrInvalidEmail = errors.New("email address is invalid")

	// ErrPhoneRequired is returned when the phone is blank.
	ErrPhoneRequired = errors.New("phone is required")

	// ErrInvalidPhone is returned when the phone has too few digits.
	ErrInvalidPhone = errors.New("phone number is invalid")

	// ErrInvalidDate is returned for dates that are malformed or in the past.
	ErrInvalidDate = errors.New("preferred date must be YYYY-MM-DD and not in the past")

	// ErrInvalidTime is returned for times outside the offered slots.
	ErrInvalidTime = errors.New("preferred time is not an offered slot")

	// ErrInvalidTherapyType is returned for unknown therapy types.
	ErrInvalidTherapyType = errors.New("therapy type is not offered")
)

// FieldError ties a validation failure to a form field.
type FieldError struct {
	Field string
	Err   error
}

// ValidationError lists every failing field of a request.
type ValidationError []FieldError

func (v ValidationError) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Field+": "+fe.Err.Error())
	}
	return "booking: invalid request: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the field errors to errors.Is.
func (v ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, fe := range v {
		errs = append(errs, fe.Err)
	}
	return errs
}

// Fields maps field names to messages.
func (v ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, fe := range v {
		out[fe.Field] = fe.Err.Error()
	}
	return out
}
