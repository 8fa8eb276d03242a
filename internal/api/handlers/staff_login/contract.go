package staff_login

import (
	"context"
	"net/http"

	"github.com/m04kA/SorftInn-Web/internal/service/staff/models"
	"github.com/m04kA/SorftInn-Web/internal/session"
)

type StaffService interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
}

type SessionManager interface {
	Start(w http.ResponseWriter, token string) session.Session
	Load(r *http.Request) (session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
