package domain

import "errors"

var (
	// ErrMissingDates is returned when check-in or check-out is absent
	ErrMissingDates = errors.New("check-in and check-out dates are required")

	// ErrInvalidDates is returned when a date does not parse or the range is empty or reversed
	ErrInvalidDates = errors.New("invalid check-in/check-out dates")

	// ErrInvalidPrice is returned when a nightly rate is not a non-negative number
	ErrInvalidPrice = errors.New("invalid nightly rate")

	// ErrInvalidNights is returned when a stay has no nights
	ErrInvalidNights = errors.New("nights must be positive")
)
