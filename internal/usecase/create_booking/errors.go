package create_booking

import "errors"

var (
	// ErrIncompleteForm возвращается, когда не заполнено хотя бы одно обязательное поле
	ErrIncompleteForm = errors.New("create_booking: incomplete form")

	// ErrBookingRejected возвращается, когда бэкенд отклонил бронирование
	ErrBookingRejected = errors.New("create_booking: booking rejected")

	// ErrNetworkFailure возвращается, когда бэкенд не ответил
	ErrNetworkFailure = errors.New("create_booking: network failure")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Сообщения для пользователя
const (
	MsgIncompleteForm = "Please fill in all required fields."
	MsgBookingFailed  = "Booking failed. Please try again."
)
