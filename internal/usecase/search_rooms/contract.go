package search_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SorftInn-Web/internal/domain"
)

// RoomsClient интерфейс клиента API отеля
type RoomsClient interface {
	FetchAvailableRooms(ctx context.Context, dates domain.DateRange) ([]domain.Room, error)
}

// ImageNormalizer интерфейс сборки URL изображений
type ImageNormalizer = domain.ImageNormalizer

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
