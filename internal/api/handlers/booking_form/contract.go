package booking_form

import (
	"context"

	getRoomOffer "github.com/m04kA/SorftInn-Web/internal/usecase/get_room_offer"
)

type GetRoomOfferUseCase interface {
	Execute(ctx context.Context, req *getRoomOffer.Request) (*getRoomOffer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
