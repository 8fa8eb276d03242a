package get_room_offer

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("get_room_offer: room not found")

	// ErrRoomUnavailable возвращается, когда бэкенд не вернул данные комнаты
	ErrRoomUnavailable = errors.New("get_room_offer: room details unavailable")
)

// Сообщения для пользователя
const (
	MsgRoomNotFound    = "We couldn't find that room. Please go back and pick another one."
	MsgRoomUnavailable = "Unable to load room details right now. Please try again later."
)
