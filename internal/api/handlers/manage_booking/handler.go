package manage_booking

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/m04kA/SorftInn-Web/internal/api/handlers"
	"github.com/m04kA/SorftInn-Web/internal/api/handlers/staff_dashboard"
	"github.com/m04kA/SorftInn-Web/internal/domain"
	staffService "github.com/m04kA/SorftInn-Web/internal/service/staff"
	"github.com/m04kA/SorftInn-Web/internal/session"
)

const dashboardPath = "/auth/dashboard"

type Handler struct {
	service  StaffService
	sessions SessionManager
	logger   Logger
}

func NewHandler(service StaffService, sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

// HandleStatus POST /auth/dashboard/bookings/{bookingId}/status (form: status=confirmed|cancelled)
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	token, bookingID, ok := h.prepare(w, r)
	if !ok {
		return
	}

	status := strings.ToLower(strings.TrimSpace(r.PostFormValue("status")))
	if err := h.service.UpdateStatus(r.Context(), token, bookingID, status); err != nil {
		h.fail(w, r, bookingID, err)
		return
	}

	notice := staff_dashboard.NoticeConfirmed
	if status == domain.StatusCancelled {
		notice = staff_dashboard.NoticeCancelled
	}
	h.logger.Info("POST /auth/dashboard/bookings/%d/status - Set to %s", bookingID, status)
	handlers.Redirect(w, r, dashboardURL("notice", notice))
}

// HandleDelete POST /auth/dashboard/bookings/{bookingId}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	token, bookingID, ok := h.prepare(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), token, bookingID); err != nil {
		h.fail(w, r, bookingID, err)
		return
	}

	h.logger.Info("POST /auth/dashboard/bookings/%d/delete - Deleted", bookingID)
	handlers.Redirect(w, r, dashboardURL("notice", staff_dashboard.NoticeDeleted))
}

func (h *Handler) prepare(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		handlers.Redirect(w, r, "/auth")
		return "", 0, false
	}

	bookingID, err := handlers.ParseIDVar(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST %s - Invalid booking ID: %v", r.URL.Path, err)
		handlers.Redirect(w, r, dashboardURL("error", staff_dashboard.ErrorNotFound))
		return "", 0, false
	}

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST %s - Invalid form body: %v", r.URL.Path, err)
		handlers.Redirect(w, r, dashboardURL("error", staff_dashboard.ErrorFailed))
		return "", 0, false
	}

	return s.AccessToken, bookingID, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, bookingID int64, err error) {
	switch {
	case errors.Is(err, staffService.ErrUnauthorized):
		h.logger.Warn("POST %s - Session rejected by backend, signing out", r.URL.Path)
		h.sessions.Clear(w)
		handlers.Redirect(w, r, "/auth")
	case errors.Is(err, staffService.ErrInvalidStatus):
		h.logger.Warn("POST %s - %v", r.URL.Path, err)
		handlers.Redirect(w, r, dashboardURL("error", staff_dashboard.ErrorInvalidStatus))
	case errors.Is(err, staffService.ErrBookingNotFound):
		h.logger.Warn("POST %s - Booking id=%d not found", r.URL.Path, bookingID)
		handlers.Redirect(w, r, dashboardURL("error", staff_dashboard.ErrorNotFound))
	default:
		h.logger.Error("POST %s - Failed for booking id=%d: %v", r.URL.Path, bookingID, err)
		handlers.Redirect(w, r, dashboardURL("error", staff_dashboard.ErrorFailed))
	}
}

func dashboardURL(key, value string) string {
	return dashboardPath + "?" + url.Values{key: []string{value}}.Encode()
}
