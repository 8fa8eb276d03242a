package domain

import "errors"

// User-facing text for date validation failures
const (
	MsgMissingDates = "Please select both check-in and check-out dates."
	MsgInvalidDates = "Please select valid dates. Check-out must be after check-in."
)

// DateErrorMessage maps a ParseDateRange error to the text shown next to the date picker.
// Returns "" for errors that did not come from date validation.
func DateErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingDates):
		return MsgMissingDates
	case errors.Is(err, ErrInvalidDates):
		return MsgInvalidDates
	default:
		return ""
	}
}
