package staff

import (
	"context"

	"github.com/m04kA/SorftInn-Web/internal/domain"
	"github.com/m04kA/SorftInn-Web/internal/integrations/hotelapi"
)

// StaffClient интерфейс клиента API отеля для панели сотрудника
type StaffClient interface {
	Login(ctx context.Context, email, password string) (*hotelapi.LoginResponse, error)
	GetDashboard(ctx context.Context, token string) (*domain.Dashboard, error)
	UpdateBookingStatus(ctx context.Context, token string, bookingID int64, status string) error
	DeleteBooking(ctx context.Context, token string, bookingID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
