// Package booking accepts consultation requests from the booking form.
// Requests are validated and acknowledged; nothing is stored.
package booking

import (
	"net/mail"
	"strings"
	"time"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/notify"
)

// DateLayout is the wire format of PreferredDate.
const DateLayout = "2006-01-02"

// Confirmation is the notice returned for an accepted request.
var Confirmation = notify.Toast{
	Title:       "Consultation Booked Successfully!",
	Description: "We'll contact you within 24 hours to confirm your appointment.",
}

// TimeSlots are the offered appointment times in display order.
var TimeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM",
}

// TherapyType is an offered kind of consultation.
type TherapyType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TherapyTypes lists the therapy types in display order.
var TherapyTypes = []TherapyType{
	{Value: "individual", Label: "Individual Therapy"},
	{Value: "couples", Label: "Couples Therapy"},
	{Value: "family", Label: "Family Therapy"},
	{Value: "group", Label: "Group Therapy"},
	{Value: "crisis", Label: "Crisis Support"},
	{Value: "unsure", Label: "Not Sure / General Consultation"},
}

// ConsultationRequest is the booking form submission.
type ConsultationRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferred_date,omitempty"`
	PreferredTime string `json:"preferred_time,omitempty"`
	TherapyType   string `json:"therapy_type,omitempty"`
	Concerns      string `json:"concerns,omitempty"`
}

// Normalize trims surrounding whitespace from every field.
func (r *ConsultationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.PreferredDate = strings.TrimSpace(r.PreferredDate)
	r.PreferredTime = strings.TrimSpace(r.PreferredTime)
	r.TherapyType = strings.ToLower(strings.TrimSpace(r.TherapyType))
	r.Concerns = strings.TrimSpace(r.Concerns)
}

// Validate checks the request against the form rules. now fixes "today" for
// the date check, in now's location.
func (r *ConsultationRequest) Validate(now time.Time) error {
	var errs ValidationError

	if r.Name == "" {
		errs = append(errs, FieldError{"name", ErrNameRequired})
	}

	switch {
	case r.Email == "":
		errs = append(errs, FieldError{"email", ErrEmailRequired})
	case !validEmail(r.Email):
		errs = append(errs, FieldError{"email", ErrInvalidEmail})
	}

	switch {
	case r.Phone == "":
		errs = append(errs, FieldError{"phone", ErrPhoneRequired})
	case countDigits(r.Phone) < 7:
		errs = append(errs, FieldError{"phone", ErrInvalidPhone})
	}

	if r.PreferredDate != "" {
		date, err := time.ParseInLocation(DateLayout, r.PreferredDate, now.Location())
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if err != nil || date.Before(today) {
			errs = append(errs, FieldError{"preferred_date", ErrInvalidDate})
		}
	}

	if r.PreferredTime != "" && !contains(TimeSlots, r.PreferredTime) {
		errs = append(errs, FieldError{"preferred_time", ErrInvalidTime})
	}

	if r.TherapyType != "" {
		if _, ok := therapyLabel(r.TherapyType); !ok {
			errs = append(errs, FieldError{"therapy_type", ErrInvalidTherapyType})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func therapyLabel(value string) (string, bool) {
	for _, t := range TherapyTypes {
		if t.Value == value {
			return t.Label, true
		}
	}
	return "", false
}
