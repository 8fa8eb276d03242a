package domain

import "time"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// dateLayouts accepted for check-in/check-out values, most specific last.
var dateLayouts = []string{
	DateFormat,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

const day = 24 * time.Hour

// Guest form limits
const (
	MinPasswordLength = 6
)

// BookingReferencePrefix prefix of the display-only confirmation code
const BookingReferencePrefix = "SFT-"

// BookingReferenceLength number of random characters after the prefix
const BookingReferenceLength = 6
