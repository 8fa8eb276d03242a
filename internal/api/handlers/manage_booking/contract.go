package manage_booking

import (
	"context"
	"net/http"
)

type StaffService interface {
	UpdateStatus(ctx context.Context, token string, bookingID int64, status string) error
	Delete(ctx context.Context, token string, bookingID int64) error
}

type SessionManager interface {
	Clear(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
