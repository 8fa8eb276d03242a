package get_room_offer

import (
	"context"

	"github.com/m04kA/SorftInn-Web/internal/domain"
)

// RoomsClient интерфейс клиента API отеля
type RoomsClient interface {
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
}

// ImageNormalizer интерфейс сборки URL изображений
type ImageNormalizer = domain.ImageNormalizer

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
