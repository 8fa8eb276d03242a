package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateRange is a validated availability window. CheckOut is always strictly after CheckIn.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// ParseDateRange validates a check-in/check-out pair coming from a form or a query string.
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	checkIn = strings.TrimSpace(checkIn)
	checkOut = strings.TrimSpace(checkOut)

	if checkIn == "" || checkOut == "" {
		return DateRange{}, ErrMissingDates
	}

	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: check-in: %v", ErrInvalidDates, err)
	}

	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: check-out: %v", ErrInvalidDates, err)
	}

	if !out.After(in) {
		return DateRange{}, fmt.Errorf("%w: check-out %s is not after check-in %s", ErrInvalidDates, checkOut, checkIn)
	}

	return DateRange{CheckIn: in, CheckOut: out}, nil
}

// ParseDate parses a calendar date. Values without an explicit offset are read as UTC.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date %q", value)
}

// Nights returns the number of nights in the range. A partial day counts as a full night.
func (r DateRange) Nights() int {
	d := r.CheckOut.Sub(r.CheckIn)
	if d <= 0 {
		return 0
	}
	nights := int(d / day)
	if d%day != 0 {
		nights++
	}
	return nights
}

// CheckInDate returns check-in formatted as YYYY-MM-DD
func (r DateRange) CheckInDate() string {
	return r.CheckIn.Format(DateFormat)
}

// CheckOutDate returns check-out formatted as YYYY-MM-DD
func (r DateRange) CheckOutDate() string {
	return r.CheckOut.Format(DateFormat)
}

// Tonight returns the one-night range starting on the calendar day of now.
func Tonight(now time.Time) DateRange {
	y, m, d := now.Date()
	in := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return DateRange{CheckIn: in, CheckOut: in.AddDate(0, 0, 1)}
}
