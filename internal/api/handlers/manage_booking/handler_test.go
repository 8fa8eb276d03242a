package manage_booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	staffService "github.com/m04kA/SorftInn-Web/internal/service/staff"
	"github.com/m04kA/SorftInn-Web/internal/session"
)

type stubService struct {
	err       error
	gotID     int64
	gotStatus string
	gotToken  string
	deleted   bool
}

func (s *stubService) UpdateStatus(_ context.Context, token string, bookingID int64, status string) error {
	s.gotToken, s.gotID, s.gotStatus = token, bookingID, status
	return s.err
}

func (s *stubService) Delete(_ context.Context, token string, bookingID int64) error {
	s.gotToken, s.gotID, s.deleted = token, bookingID, true
	return s.err
}

type stubSessions struct {
	cleared bool
}

func (s *stubSessions) Clear(http.ResponseWriter) { s.cleared = true }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(path, bookingID string, form url.Values, withSession bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	if withSession {
		req = req.WithContext(session.WithSession(req.Context(), session.Session{AccessToken: "tok"}))
	}
	return req
}

func TestHandleStatus(t *testing.T) {
	tests := []struct {
		name         string
		status       string
		err          error
		wantLocation string
		wantCleared  bool
	}{
		{name: "confirm", status: "confirmed", wantLocation: "/auth/dashboard?notice=confirmed"},
		{name: "cancel upper case", status: "Cancelled", wantLocation: "/auth/dashboard?notice=cancelled"},
		{
			name:         "invalid status",
			status:       "pending",
			err:          fmt.Errorf("%w: %q", staffService.ErrInvalidStatus, "pending"),
			wantLocation: "/auth/dashboard?error=invalid_status",
		},
		{
			name:         "not found",
			status:       "confirmed",
			err:          staffService.ErrBookingNotFound,
			wantLocation: "/auth/dashboard?error=not_found",
		},
		{
			name:         "unauthorized",
			status:       "confirmed",
			err:          staffService.ErrUnauthorized,
			wantLocation: "/auth",
			wantCleared:  true,
		},
		{
			name:         "backend failure",
			status:       "confirmed",
			err:          fmt.Errorf("%w: %w", staffService.ErrBackendUnavailable, errors.New("boom")),
			wantLocation: "/auth/dashboard?error=failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			sessions := &stubSessions{}
			h := NewHandler(svc, sessions, nopLogger{})

			rec := httptest.NewRecorder()
			h.HandleStatus(rec, newRequest("/auth/dashboard/bookings/12/status", "12", url.Values{"status": {tt.status}}, true))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			assert.Equal(t, tt.wantCleared, sessions.cleared)
			assert.Equal(t, int64(12), svc.gotID)
			assert.Equal(t, "tok", svc.gotToken)
			assert.Equal(t, strings.ToLower(tt.status), svc.gotStatus)
		})
	}
}

func TestHandleDelete(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, &stubSessions{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.HandleDelete(rec, newRequest("/auth/dashboard/bookings/5/delete", "5", url.Values{}, true))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/dashboard?notice=deleted", rec.Header().Get("Location"))
	assert.True(t, svc.deleted)
	assert.Equal(t, int64(5), svc.gotID)
}

func TestHandle_WithoutSessionRedirectsToLogin(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, &stubSessions{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.HandleDelete(rec, newRequest("/auth/dashboard/bookings/5/delete", "5", url.Values{}, false))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth", rec.Header().Get("Location"))
	assert.False(t, svc.deleted)
}

func TestHandle_InvalidBookingID(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, &stubSessions{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.HandleDelete(rec, newRequest("/auth/dashboard/bookings/x/delete", "x", url.Values{}, true))

	assert.Equal(t, "/auth/dashboard?error=not_found", rec.Header().Get("Location"))
	assert.False(t, svc.deleted)
}
