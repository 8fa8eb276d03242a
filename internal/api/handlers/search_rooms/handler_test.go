package search_rooms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SorftInn-Web/internal/domain"
	searchRooms "github.com/m04kA/SorftInn-Web/internal/usecase/search_rooms"
	"github.com/m04kA/SorftInn-Web/internal/web"
)

type stubUseCase struct {
	resp *searchRooms.Response
	err  error
	got  *searchRooms.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *searchRooms.Request) (*searchRooms.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestHandler(t *testing.T, uc *stubUseCase) *Handler {
	t.Helper()
	renderer, err := web.NewRenderer(web.Site{Name: "SorftInn", CurrencySymbol: "₦"})
	require.NoError(t, err)
	h := NewHandler(uc, renderer, nopLogger{})
	h.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return h
}

func sampleResponse(t *testing.T) *searchRooms.Response {
	t.Helper()
	dates, err := domain.ParseDateRange("2025-03-10", "2025-03-13")
	require.NoError(t, err)
	return &searchRooms.Response{
		Dates:  dates,
		Nights: 3,
		Offers: []domain.RoomOffer{
			{
				Room:     domain.Room{ID: 7, Name: "Ocean Suite", Number: "101", NightlyRate: domain.ParsePrice(15000)},
				Nights:   3,
				Total:    45000,
				HasTotal: true,
			},
			{
				Room:   domain.Room{ID: 8, Name: "Garden Room", NightlyRate: domain.ParsePrice("n/a")},
				Nights: 3,
			},
		},
	}
}

func TestHandle_RendersRooms(t *testing.T) {
	uc := &stubUseCase{resp: sampleResponse(t)}
	h := newTestHandler(t, uc)

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/bookings?checkIn=2025-03-10&checkOut=2025-03-13", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-03-10", uc.got.CheckIn)
	assert.Equal(t, "2025-03-13", uc.got.CheckOut)
	body := rec.Body.String()
	assert.Contains(t, body, "Ocean Suite")
	assert.Contains(t, body, "Garden Room")
	assert.Contains(t, body, "₦45,000.00")
	assert.Contains(t, body, "Price on request")
}

func TestHandle_DateErrorShowsFormMessage(t *testing.T) {
	uc := &stubUseCase{err: domain.ErrMissingDates}
	h := newTestHandler(t, uc)

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.MsgMissingDates)
}

func TestHandle_BackendFailureOffersRetry(t *testing.T) {
	uc := &stubUseCase{err: fmt.Errorf("%w: boom", searchRooms.ErrAvailabilityUnavailable)}
	h := newTestHandler(t, uc)

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/bookings?checkIn=2025-03-10&checkOut=2025-03-13", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, searchRooms.MsgAvailabilityUnavailable)
	assert.Contains(t, body, "Try again")
}

func TestHandleJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := newTestHandler(t, &stubUseCase{resp: sampleResponse(t)})

		rec := httptest.NewRecorder()
		h.HandleJSON(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/available?checkIn=2025-03-10&checkOut=2025-03-13", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got RoomsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 3, got.Nights)
		require.Len(t, got.Rooms, 2)
		require.NotNil(t, got.Rooms[0].Total)
		assert.InDelta(t, 45000, *got.Rooms[0].Total, 0.001)
		assert.Nil(t, got.Rooms[1].Total)
	})

	t.Run("invalid dates", func(t *testing.T) {
		h := newTestHandler(t, &stubUseCase{err: fmt.Errorf("%w: reversed", domain.ErrInvalidDates)})

		rec := httptest.NewRecorder()
		h.HandleJSON(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/available?checkIn=2025-03-13&checkOut=2025-03-10", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.MsgInvalidDates)
	})

	t.Run("backend failure", func(t *testing.T) {
		h := newTestHandler(t, &stubUseCase{err: searchRooms.ErrAvailabilityUnavailable})

		rec := httptest.NewRecorder()
		h.HandleJSON(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/available?checkIn=2025-03-10&checkOut=2025-03-13", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
