package staff_login

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SorftInn-Web/internal/integrations/hotelapi"
	staffService "github.com/m04kA/SorftInn-Web/internal/service/staff"
	"github.com/m04kA/SorftInn-Web/internal/service/staff/models"
	"github.com/m04kA/SorftInn-Web/internal/session"
	"github.com/m04kA/SorftInn-Web/internal/web"
)

type stubService struct {
	resp *models.LoginResponse
	err  error
}

func (s *stubService) Login(context.Context, string, string) (*models.LoginResponse, error) {
	return s.resp, s.err
}

type stubSessions struct {
	loaded  bool
	started string
}

func (s *stubSessions) Start(_ http.ResponseWriter, token string) session.Session {
	s.started = token
	return session.Session{AccessToken: token}
}

func (s *stubSessions) Load(*http.Request) (session.Session, error) {
	if s.loaded {
		return session.Session{AccessToken: "tok"}, nil
	}
	return session.Session{}, session.ErrNoSession
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestHandler(t *testing.T, svc *stubService, sessions *stubSessions) *Handler {
	t.Helper()
	renderer, err := web.NewRenderer(web.Site{Name: "SorftInn", CurrencySymbol: "₦"})
	require.NoError(t, err)
	return NewHandler(svc, sessions, renderer, nopLogger{})
}

func postLogin(email, password string) *http.Request {
	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleForm(t *testing.T) {
	t.Run("renders login without session", func(t *testing.T) {
		h := newTestHandler(t, &stubService{}, &stubSessions{})

		rec := httptest.NewRecorder()
		h.HandleForm(rec, httptest.NewRequest(http.MethodGet, "/auth", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Staff sign in")
	})

	t.Run("redirects active session", func(t *testing.T) {
		h := newTestHandler(t, &stubService{}, &stubSessions{loaded: true})

		rec := httptest.NewRecorder()
		h.HandleForm(rec, httptest.NewRequest(http.MethodGet, "/auth", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, dashboardPath, rec.Header().Get("Location"))
	})
}

func TestHandleSubmit_Success(t *testing.T) {
	sessions := &stubSessions{}
	h := newTestHandler(t, &stubService{resp: &models.LoginResponse{AccessToken: "access-1", Username: "frontdesk"}}, sessions)

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, postLogin("desk@sorftinn.com", "secret12"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, dashboardPath, rec.Header().Get("Location"))
	assert.Equal(t, "access-1", sessions.started)
}

func TestHandleSubmit_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "invalid input",
			err:        staffService.ErrInvalidCredentials,
			wantStatus: http.StatusBadRequest,
			wantMsg:    staffService.MsgInvalidCredentials,
		},
		{
			name: "rejected",
			err: fmt.Errorf("%w: %w", staffService.ErrLoginRejected, &hotelapi.LoginRejectedError{
				Status: http.StatusUnauthorized,
				Fields: []hotelapi.FieldError{{Field: "detail", Messages: []string{"Invalid email or password."}}},
			}),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid email or password.",
		},
		{
			name:       "backend down",
			err:        staffService.ErrBackendUnavailable,
			wantStatus: http.StatusBadGateway,
			wantMsg:    staffService.MsgLoginFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &stubSessions{}
			h := newTestHandler(t, &stubService{err: tt.err}, sessions)

			rec := httptest.NewRecorder()
			h.HandleSubmit(rec, postLogin("desk@sorftinn.com", "secret12"))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, sessions.started)
			body := rec.Body.String()
			assert.Contains(t, body, html.EscapeString(tt.wantMsg))
			assert.Contains(t, body, "desk@sorftinn.com")
			assert.NotContains(t, body, "secret12")
		})
	}
}
