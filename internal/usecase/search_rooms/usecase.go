package search_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SorftInn-Web/internal/domain"
)

// UseCase use case поиска свободных комнат
type UseCase struct {
	rooms        RoomsClient
	images       ImageNormalizer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(rooms RoomsClient, images ImageNormalizer, logger Logger) *UseCase {
	return &UseCase{
		rooms:        rooms,
		images:       images,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute валидирует даты, запрашивает доступность и рассчитывает стоимость каждой комнаты.
// Ошибки валидации дат возвращаются как domain.ErrMissingDates / domain.ErrInvalidDates без запроса к бэкенду.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	dates, err := domain.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("SearchRooms: invalid dates check_in=%q check_out=%q: %v", req.CheckIn, req.CheckOut, err)
		return nil, err
	}

	return uc.search(ctx, dates)
}

// ExecuteTonight ищет комнаты, свободные с сегодняшнего дня на одну ночь (главная страница)
func (uc *UseCase) ExecuteTonight(ctx context.Context) (*Response, error) {
	return uc.search(ctx, domain.Tonight(uc.timeProvider.Now()))
}

func (uc *UseCase) search(ctx context.Context, dates domain.DateRange) (*Response, error) {
	rooms, err := uc.rooms.FetchAvailableRooms(ctx, dates)
	if err != nil {
		uc.logger.Error("SearchRooms: failed to fetch rooms for %s..%s: %v", dates.CheckInDate(), dates.CheckOutDate(), err)
		return nil, fmt.Errorf("%w: %w", ErrAvailabilityUnavailable, err)
	}

	nights := dates.Nights()
	return &Response{
		Dates:  dates,
		Nights: nights,
		Offers: domain.NewRoomOffers(rooms, nights, uc.images),
	}, nil
}

// UserMessage возвращает текст ошибки для страницы результатов.
// Любой сбой бэкенда показывается одним общим сообщением.
func UserMessage(err error) string {
	if msg := domain.DateErrorMessage(err); msg != "" {
		return msg
	}
	return MsgAvailabilityUnavailable
}
