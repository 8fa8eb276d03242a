package search_rooms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SorftInn-Web/internal/domain"
	"github.com/m04kA/SorftInn-Web/internal/integrations/hotelapi"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type prefixImages struct{}

func (prefixImages) Normalize(ref string) string {
	if ref == "" {
		return ""
	}
	return "https://img.test/" + ref
}

type stubRooms struct {
	rooms []domain.Room
	err   error
	calls []domain.DateRange
}

func (s *stubRooms) FetchAvailableRooms(_ context.Context, dates domain.DateRange) ([]domain.Room, error) {
	s.calls = append(s.calls, dates)
	return s.rooms, s.err
}

func TestExecute_PricesOffers(t *testing.T) {
	rooms := &stubRooms{rooms: []domain.Room{
		{ID: 1, Name: "Standard", NightlyRate: domain.ParsePrice("15000"), Images: []string{"a.jpg"}},
		{ID: 2, Name: "Suite", NightlyRate: domain.ParsePrice("call us")},
	}}
	uc := NewUseCase(rooms, prefixImages{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CheckIn: "2025-03-10", CheckOut: "2025-03-13"})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Nights)
	require.Len(t, resp.Offers, 2)
	assert.Equal(t, 45000.0, resp.Offers[0].Total)
	assert.True(t, resp.Offers[0].HasTotal)
	assert.Equal(t, "https://img.test/a.jpg", resp.Offers[0].CoverImage())
	assert.False(t, resp.Offers[1].HasTotal)
}

func TestExecute_InvalidDatesSkipBackend(t *testing.T) {
	rooms := &stubRooms{}
	uc := NewUseCase(rooms, prefixImages{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CheckIn: "2025-03-13", CheckOut: "2025-03-10"})
	assert.ErrorIs(t, err, domain.ErrInvalidDates)

	_, err = uc.Execute(context.Background(), &Request{CheckIn: "2025-03-13"})
	assert.ErrorIs(t, err, domain.ErrMissingDates)
	assert.Equal(t, domain.MsgMissingDates, UserMessage(err))

	assert.Empty(t, rooms.calls)
}

func TestExecute_BackendFailure(t *testing.T) {
	uc := NewUseCase(&stubRooms{err: errors.New("status 503")}, prefixImages{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CheckIn: "2025-03-10", CheckOut: "2025-03-11"})
	assert.ErrorIs(t, err, ErrAvailabilityUnavailable)
	assert.Equal(t, MsgAvailabilityUnavailable, UserMessage(err))
}

func TestExecute_BackendStatusPreserved(t *testing.T) {
	uc := NewUseCase(&stubRooms{err: &hotelapi.AvailabilityFetchError{Status: 503}}, prefixImages{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CheckIn: "2025-03-10", CheckOut: "2025-03-11"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAvailabilityUnavailable)
	assert.ErrorIs(t, err, hotelapi.ErrAvailabilityFetch)

	var fetchErr *hotelapi.AvailabilityFetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, 503, fetchErr.Status)
	assert.Equal(t, MsgAvailabilityUnavailable, UserMessage(err))
}

func TestExecuteTonight(t *testing.T) {
	rooms := &stubRooms{}
	uc := NewUseCase(rooms, prefixImages{}, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC)}

	resp, err := uc.ExecuteTonight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Nights)
	assert.Empty(t, resp.Offers)

	require.Len(t, rooms.calls, 1)
	assert.Equal(t, "2025-03-10", rooms.calls[0].CheckInDate())
	assert.Equal(t, "2025-03-11", rooms.calls[0].CheckOutDate())
}
