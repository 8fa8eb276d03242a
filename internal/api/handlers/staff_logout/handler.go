package staff_logout

import (
	"net/http"

	"github.com/m04kA/SorftInn-Web/internal/api/handlers"
)

type Handler struct {
	sessions SessionManager
	logger   Logger
}

func NewHandler(sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	h.logger.Info("POST /auth/logout - Session cleared")
	handlers.Redirect(w, r, "/auth")
}
