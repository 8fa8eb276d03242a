package get_room_offer

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SorftInn-Web/internal/domain"
	"github.com/m04kA/SorftInn-Web/internal/integrations/hotelapi"
)

// UseCase use case получения комнаты с ценой за период
type UseCase struct {
	rooms  RoomsClient
	images ImageNormalizer
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(rooms RoomsClient, images ImageNormalizer, logger Logger) *UseCase {
	return &UseCase{
		rooms:  rooms,
		images: images,
		logger: logger,
	}
}

// Execute валидирует даты, получает комнату и рассчитывает итоговую стоимость
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	dates, err := domain.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("GetRoomOffer: invalid dates for room_id=%d: %v", req.RoomID, err)
		return nil, err
	}

	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: room_id=%d", ErrRoomNotFound, req.RoomID)
	}

	room, err := uc.rooms.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, hotelapi.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomOffer: room_id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomOffer: failed to get room_id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrRoomUnavailable, err)
	}

	return &Response{
		Dates: dates,
		Offer: domain.NewRoomOffer(*room, dates.Nights(), uc.images),
	}, nil
}

// UserMessage возвращает текст ошибки для страницы бронирования
func UserMessage(err error) string {
	if msg := domain.DateErrorMessage(err); msg != "" {
		return msg
	}
	if errors.Is(err, ErrRoomNotFound) {
		return MsgRoomNotFound
	}
	return MsgRoomUnavailable
}
