package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange_Valid(t *testing.T) {
	r, err := ParseDateRange("2026-02-10", "2026-02-12")
	require.NoError(t, err)

	assert.Equal(t, 2, r.Nights())
	assert.Equal(t, "2026-02-10", r.CheckInDate())
	assert.Equal(t, "2026-02-12", r.CheckOutDate())
}

func TestParseDateRange_Missing(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"both empty", "", ""},
		{"no check-in", "", "2026-02-12"},
		{"no check-out", "2026-02-10", ""},
		{"whitespace only", "  ", "2026-02-12"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDateRange(tc.checkIn, tc.checkOut)
			assert.ErrorIs(t, err, ErrMissingDates)
		})
	}
}

func TestParseDateRange_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"reversed", "2026-02-12", "2026-02-10"},
		{"same day", "2026-02-10", "2026-02-10"},
		{"garbage check-in", "tomorrow", "2026-02-12"},
		{"garbage check-out", "2026-02-10", "soon"},
		{"impossible date", "2026-02-30", "2026-03-02"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDateRange(tc.checkIn, tc.checkOut)
			assert.ErrorIs(t, err, ErrInvalidDates)
		})
	}
}

func TestDateRange_NightsRoundsPartialDaysUp(t *testing.T) {
	cases := []struct {
		checkIn  string
		checkOut string
		nights   int
	}{
		{"2026-02-10", "2026-02-11", 1},
		{"2026-02-10T14:00", "2026-02-11T11:00", 1},
		{"2026-02-10T10:00", "2026-02-11T12:00", 2},
		{"2026-02-10", "2026-02-10T00:01", 1},
		{"2026-02-28", "2026-03-07", 7},
	}

	for _, tc := range cases {
		r, err := ParseDateRange(tc.checkIn, tc.checkOut)
		require.NoError(t, err)
		assert.Equal(t, tc.nights, r.Nights(), "%s -> %s", tc.checkIn, tc.checkOut)
		assert.GreaterOrEqual(t, r.Nights(), 1)
	}
}

func TestParseDate_RFC3339KeepsOffset(t *testing.T) {
	d, err := ParseDate("2026-02-10T10:00:00+01:00")
	require.NoError(t, err)
	assert.Equal(t, 9, d.UTC().Hour())
}

func TestTonight(t *testing.T) {
	now := time.Date(2026, 10, 18, 21, 30, 0, 0, time.UTC)
	r := Tonight(now)

	assert.Equal(t, "2026-10-18", r.CheckInDate())
	assert.Equal(t, "2026-10-19", r.CheckOutDate())
	assert.Equal(t, 1, r.Nights())
}

func TestDateErrorMessage(t *testing.T) {
	_, err := ParseDateRange("", "2025-03-12")
	assert.Equal(t, MsgMissingDates, DateErrorMessage(err))

	_, err = ParseDateRange("2025-03-12", "2025-03-12")
	assert.Equal(t, MsgInvalidDates, DateErrorMessage(err))

	assert.Empty(t, DateErrorMessage(ErrInvalidPrice))
}
