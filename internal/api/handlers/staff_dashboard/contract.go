package staff_dashboard

import (
	"context"
	"net/http"

	"github.com/m04kA/SorftInn-Web/internal/domain"
	"github.com/m04kA/SorftInn-Web/internal/service/staff/models"
)

type StaffService interface {
	Dashboard(ctx context.Context, token string) (*models.DashboardResponse, error)
}

// SubmissionLister журнал отправок с сайта (опционально, может быть nil)
type SubmissionLister interface {
	ListRecent(ctx context.Context, limit uint64) ([]domain.Submission, error)
}

type SessionManager interface {
	Clear(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
