package booking_success

import (
	"context"

	"github.com/m04kA/SorftInn-Web/internal/domain"
)

// SubmissionLookup журнал отправок (опционально, может быть nil)
type SubmissionLookup interface {
	GetByReference(ctx context.Context, reference string) (*domain.Submission, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
