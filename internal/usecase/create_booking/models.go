package create_booking

import "github.com/m04kA/SorftInn-Web/internal/domain"

// Request модель запроса на создание бронирования (значения формы как есть)
type Request struct {
	RoomID   int64
	CheckIn  string
	CheckOut string
	FullName string
	Email    string
	Phone    string
}

// Response модель ответа на принятое бронирование
type Response struct {
	Reference string // код для экрана подтверждения, не идентификатор бэкенда
	BackendID int64  // 0, если бэкенд не вернул id
	RoomID    int64
	Dates     domain.DateRange
	Nights    int
}

// Метки исхода для метрик
const (
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)
