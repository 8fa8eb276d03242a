package staff

import "errors"

var (
	// ErrInvalidCredentials возвращается, когда email пустой или пароль короче минимума
	ErrInvalidCredentials = errors.New("staff: invalid credentials input")

	// ErrLoginRejected возвращается, когда бэкенд отклонил вход
	ErrLoginRejected = errors.New("staff: login rejected")

	// ErrUnauthorized возвращается, когда токен сессии больше не принимается бэкендом
	ErrUnauthorized = errors.New("staff: unauthorized")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("staff: booking not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("staff: invalid booking status")

	// ErrBackendUnavailable возвращается, когда бэкенд не ответил или ответил ошибкой
	ErrBackendUnavailable = errors.New("staff: backend unavailable")
)

// Сообщения для пользователя
const (
	MsgInvalidCredentials = "Please enter a valid email and password (min 6 characters)"
	MsgLoginFailed        = "Login failed. Please try again."
	MsgDashboardFailed    = "Unable to load the dashboard right now. Please try again later."
	MsgActionFailed       = "Unable to update the booking. Please try again."
	MsgBookingNotFound    = "Booking not found. It may have been removed already."
	MsgInvalidStatus      = "Unsupported booking status."
)
