package create_booking

import (
	"context"

	"github.com/m04kA/SorftInn-Web/internal/domain"
	"github.com/m04kA/SorftInn-Web/internal/integrations/hotelapi"
)

// BookingClient интерфейс клиента API отеля
type BookingClient interface {
	CreateBooking(ctx context.Context, booking domain.BookingRequest) (*hotelapi.CreatedBooking, error)
}

// SubmissionJournal интерфейс журнала отправок (опционально, может быть nil)
type SubmissionJournal interface {
	Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error)
}

// ReferenceGenerator генератор кода бронирования для экрана подтверждения
type ReferenceGenerator interface {
	NewReference() string
}

// OutcomeRecorder приёмник метрик исхода отправки (опционально, может быть nil)
type OutcomeRecorder interface {
	IncBookingOutcome(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
