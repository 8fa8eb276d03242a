package staff_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SorftInn-Web/internal/api/handlers"
	staffService "github.com/m04kA/SorftInn-Web/internal/service/staff"
	"github.com/m04kA/SorftInn-Web/internal/session"
)

const (
	pageTitle        = "Dashboard"
	submissionsLimit = 20
)

type Handler struct {
	service     StaffService
	submissions SubmissionLister
	sessions    SessionManager
	renderer    handlers.PageRenderer
	logger      Logger
}

// NewHandler submissions может быть nil, тогда блок журнала не показывается
func NewHandler(
	service StaffService,
	submissions SubmissionLister,
	sessions SessionManager,
	renderer handlers.PageRenderer,
	logger Logger,
) *Handler {
	return &Handler{
		service:     service,
		submissions: submissions,
		sessions:    sessions,
		renderer:    renderer,
		logger:      logger,
	}
}

// Handle GET /auth/dashboard (за middleware.Auth)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		handlers.Redirect(w, r, "/auth")
		return
	}

	q := r.URL.Query()
	page := Page{
		Notice: notices[q.Get("notice")],
		Error:  errorMessages[q.Get("error")],
	}

	dashboard, err := h.service.Dashboard(r.Context(), s.AccessToken)
	if err != nil {
		if errors.Is(err, staffService.ErrUnauthorized) {
			h.logger.Warn("GET /auth/dashboard - Session rejected by backend, signing out")
			h.sessions.Clear(w)
			handlers.Redirect(w, r, "/auth")
			return
		}
		h.logger.Error("GET /auth/dashboard - Failed to load dashboard: %v", err)
		page.Error = staffService.MsgDashboardFailed
		handlers.RenderPage(w, h.renderer, h.logger, http.StatusBadGateway, "dashboard", pageTitle, page)
		return
	}

	page.Dashboard = dashboard
	if h.submissions != nil {
		items, err := h.submissions.ListRecent(r.Context(), submissionsLimit)
		if err != nil {
			h.logger.Warn("GET /auth/dashboard - Failed to list submissions: %v", err)
		} else {
			page.Submissions = newSubmissionRows(items)
			page.ShowSubmissions = true
		}
	}
	handlers.RenderPage(w, h.renderer, h.logger, http.StatusOK, "dashboard", pageTitle, page)
}
