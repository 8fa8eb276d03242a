package search_rooms

import "errors"

var (
	// ErrAvailabilityUnavailable возвращается, когда бэкенд не вернул список комнат
	ErrAvailabilityUnavailable = errors.New("search_rooms: availability unavailable")
)

// MsgAvailabilityUnavailable сообщение для пользователя при сбое загрузки комнат
const MsgAvailabilityUnavailable = "Unable to load available rooms right now. Please try again later."
