package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SorftInn-Web/internal/domain"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(Site{Name: "SorftInn", CurrencySymbol: "₦"})
	require.NoError(t, err)
	return r
}

type testSearch struct {
	CheckIn, CheckOut, MinDate, Error string
}

type testGridPage struct {
	Search     testSearch
	Rooms      []RoomCard
	EmptyText  string
	RoomsError string
	HasDates   bool
	Nights     int
	FetchError string
	RetryURL   string
}

func TestRenderer_PagesParse(t *testing.T) {
	r := newTestRenderer(t)
	for _, page := range []string{"home", "bookings", "booking_form", "success", "login", "dashboard", "error"} {
		assert.Contains(t, r.pages, page)
	}
}

func TestRenderer_RoomGrid(t *testing.T) {
	r := newTestRenderer(t)
	dates, err := domain.ParseDateRange("2025-03-10", "2025-03-13")
	require.NoError(t, err)

	offers := []domain.RoomOffer{
		{Room: domain.Room{ID: 7, Name: "Deluxe", NightlyRate: domain.ParsePrice("15000")}, Nights: 3, Total: 45000, HasTotal: true},
		{Room: domain.Room{ID: 8, Name: "Penthouse", NightlyRate: domain.ParsePrice("ask")}, Nights: 3},
	}

	rec := httptest.NewRecorder()
	err = r.Render(rec, http.StatusOK, "bookings", "Available rooms", testGridPage{
		Search:   testSearch{CheckIn: "2025-03-10", CheckOut: "2025-03-13"},
		Rooms:    NewRoomCards(offers, dates),
		HasDates: true,
		Nights:   3,
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Contains(t, body, "₦45,000.00")
	assert.Contains(t, body, "Price on request")
	assert.Contains(t, body, "Mon, 10 Mar 2025")
	assert.Contains(t, body, "/bookings/7?checkIn=2025-03-10&amp;checkOut=2025-03-13")
	assert.Contains(t, body, PlaceholderPath)
}

func TestRenderer_FetchErrorShowsRetry(t *testing.T) {
	r := newTestRenderer(t)

	rec := httptest.NewRecorder()
	err := r.Render(rec, http.StatusBadGateway, "bookings", "Available rooms", testGridPage{
		HasDates:   true,
		FetchError: "Unable to load available rooms right now. Please try again later.",
		RetryURL:   SearchURL("2025-03-10", "2025-03-13"),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Try again")
	assert.True(t, strings.Contains(rec.Body.String(), "/bookings?checkIn=2025-03-10"))
}

func TestRenderer_UnknownPage(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()
	assert.Error(t, r.Render(rec, http.StatusOK, "missing", "", nil))
	assert.Empty(t, rec.Body.String())
}

func TestFormatters(t *testing.T) {
	r := newTestRenderer(t)
	assert.Equal(t, "₦1,250,000.50", r.FormatMoney(1250000.5))
	assert.Equal(t, "Mon, 10 Mar 2025", FormatDate("2025-03-10"))
	assert.Equal(t, "soon", FormatDate("soon"))
	assert.Equal(t, "badge badge-warning", BadgeClass(domain.BadgeWarning))
	assert.Equal(t, "night", Plural(1, "night", "nights"))
	assert.Equal(t, "nights", Plural(2, "night", "nights"))
}

func TestURLs(t *testing.T) {
	dates, err := domain.ParseDateRange("2025-03-10", "2025-03-12")
	require.NoError(t, err)

	assert.Equal(t, "/bookings/7?checkIn=2025-03-10&checkOut=2025-03-12", BookingURL(7, dates))
	assert.Equal(t, "/bookings/7/success?checkIn=2025-03-10&checkOut=2025-03-12&ref=SFT-ABC123", SuccessURL(7, "SFT-ABC123", dates))
}

func TestStaticHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/placeholder.svg", nil)
	StaticHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No image")
}
