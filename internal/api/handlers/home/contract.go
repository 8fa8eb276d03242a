package home

import (
	"context"

	searchRooms "github.com/m04kA/SorftInn-Web/internal/usecase/search_rooms"
)

type SearchRoomsUseCase interface {
	ExecuteTonight(ctx context.Context) (*searchRooms.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
