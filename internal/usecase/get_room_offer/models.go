package get_room_offer

import "github.com/m04kA/SorftInn-Web/internal/domain"

// Request модель запроса комнаты для формы бронирования
type Request struct {
	RoomID   int64
	CheckIn  string
	CheckOut string
}

// Response модель ответа: комната, рассчитанная на выбранный период
type Response struct {
	Dates domain.DateRange
	Offer domain.RoomOffer
}
