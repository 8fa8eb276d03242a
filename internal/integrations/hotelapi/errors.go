package hotelapi

import (
	"errors"
	"fmt"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("hotelapi: room not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("hotelapi: booking not found")

	// ErrAvailabilityFetch возвращается при неуспешном ответе эндпоинта доступности
	ErrAvailabilityFetch = errors.New("hotelapi: availability fetch failed")

	// ErrBookingRejected возвращается, когда бэкенд отклонил бронирование
	ErrBookingRejected = errors.New("hotelapi: booking rejected")

	// ErrLoginRejected возвращается, когда бэкенд отклонил вход
	ErrLoginRejected = errors.New("hotelapi: login rejected")

	// ErrNetworkFailure возвращается, когда ответ от бэкенда не получен
	ErrNetworkFailure = errors.New("hotelapi: network failure")

	// ErrUnauthorized возвращается при 401/403 от бэкенда (токен истёк или отозван)
	ErrUnauthorized = errors.New("hotelapi: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("hotelapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("hotelapi client: invalid response")
)

// Пользовательские сообщения
const (
	msgBookingFailed     = "Booking failed. Please try again."
	msgLoginFailed       = "Login failed. Please try again."
	msgNetworkError      = "Network error: please check your internet connection."
	msgRequestTimeout    = "Request timed out. Please try again."
	msgServerUnreachable = "Unable to connect to the server. Please try again later."
)

// AvailabilityFetchError неуспешный HTTP статус эндпоинта доступности
type AvailabilityFetchError struct {
	Status int
}

func (e *AvailabilityFetchError) Error() string {
	return fmt.Sprintf("%v: unexpected status %d", ErrAvailabilityFetch, e.Status)
}

func (e *AvailabilityFetchError) Is(target error) bool {
	return target == ErrAvailabilityFetch
}

// BookingRejectedError структурированная ошибка бэкенда при создании бронирования.
// Fields хранит ошибки полей в порядке их следования в теле ответа.
type BookingRejectedError struct {
	Status int
	Fields []FieldError
}

func (e *BookingRejectedError) Error() string {
	return fmt.Sprintf("%v: status %d: %s", ErrBookingRejected, e.Status, e.Message())
}

func (e *BookingRejectedError) Is(target error) bool {
	return target == ErrBookingRejected
}

// Message возвращает сообщение для пользователя.
// Приоритет: detail, non_field_errors, room/email/phone/check_in/check_out, первое значение любого поля.
func (e *BookingRejectedError) Message() string {
	if msg := firstMessage(e.Fields, "detail"); msg != "" {
		return msg
	}
	if msg := firstMessage(e.Fields, "non_field_errors"); msg != "" {
		return msg
	}
	for _, key := range bookingFieldKeys {
		if msg := firstMessage(e.Fields, key); msg != "" {
			return msg
		}
	}
	if msg := firstAnyMessage(e.Fields); msg != "" {
		return msg
	}
	return msgBookingFailed
}

// LoginRejectedError ошибка бэкенда при входе сотрудника
type LoginRejectedError struct {
	Status int
	Fields []FieldError
}

func (e *LoginRejectedError) Error() string {
	return fmt.Sprintf("%v: status %d: %s", ErrLoginRejected, e.Status, e.Message())
}

func (e *LoginRejectedError) Is(target error) bool {
	return target == ErrLoginRejected
}

// Message возвращает сообщение для пользователя: detail, затем ошибки email, затем username
func (e *LoginRejectedError) Message() string {
	if msg := firstMessage(e.Fields, "detail"); msg != "" {
		return msg
	}
	for _, key := range []string{"email", "username"} {
		if msg := joinedMessages(e.Fields, key); msg != "" {
			return msg
		}
	}
	return msgLoginFailed
}

// NetworkErrorKind класс сетевой ошибки
type NetworkErrorKind string

const (
	NetworkConnectivity NetworkErrorKind = "connectivity"
	NetworkTimeout      NetworkErrorKind = "timeout"
	NetworkUnexpected   NetworkErrorKind = "unexpected"
)

// NetworkError запрос не получил ответа
type NetworkError struct {
	Kind NetworkErrorKind
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%v (%s): %v", ErrNetworkFailure, e.Kind, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetworkFailure
}

// Message возвращает сообщение для пользователя без технических деталей
func (e *NetworkError) Message() string {
	switch e.Kind {
	case NetworkConnectivity:
		return msgNetworkError
	case NetworkTimeout:
		return msgRequestTimeout
	default:
		return msgServerUnreachable
	}
}

// StatusError неожиданный HTTP статус
type StatusError struct {
	Endpoint string
	Status   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %s: unexpected status code %d", ErrInvalidResponse, e.Endpoint, e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrInvalidResponse
}
