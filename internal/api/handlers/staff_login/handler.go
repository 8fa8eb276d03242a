package staff_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SorftInn-Web/internal/api/handlers"
	staffService "github.com/m04kA/SorftInn-Web/internal/service/staff"
)

const (
	pageTitle     = "Staff sign in"
	dashboardPath = "/auth/dashboard"
)

type Handler struct {
	service  StaffService
	sessions SessionManager
	renderer handlers.PageRenderer
	logger   Logger
}

func NewHandler(service StaffService, sessions SessionManager, renderer handlers.PageRenderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// HandleForm GET /auth
// Активная сессия сразу ведёт на панель
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	if _, err := h.sessions.Load(r); err == nil {
		handlers.Redirect(w, r, dashboardPath)
		return
	}

	handlers.RenderPage(w, h.renderer, h.logger, http.StatusOK, "login", pageTitle, Page{})
}

// HandleSubmit POST /auth
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /auth - Invalid form body: %v", err)
		handlers.RenderPage(w, h.renderer, h.logger, http.StatusBadRequest, "login", pageTitle,
			Page{Error: staffService.MsgLoginFailed})
		return
	}

	email := r.PostFormValue("email")
	resp, err := h.service.Login(r.Context(), email, r.PostFormValue("password"))
	if err != nil {
		status := statusFor(err)
		h.logger.Warn("POST /auth - Login failed (status %d): %v", status, err)
		handlers.RenderPage(w, h.renderer, h.logger, status, "login", pageTitle,
			Page{Email: email, Error: staffService.LoginMessage(err)})
		return
	}

	h.sessions.Start(w, resp.AccessToken)
	h.logger.Info("POST /auth - Staff user %s signed in", resp.Username)
	handlers.Redirect(w, r, dashboardPath)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, staffService.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, staffService.ErrLoginRejected):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}
