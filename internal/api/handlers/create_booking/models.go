package create_booking

import (
	"net/http"
	"strings"

	"github.com/m04kA/SorftInn-Web/internal/api/handlers/booking_form"
	createBooking "github.com/m04kA/SorftInn-Web/internal/usecase/create_booking"
)

// Имена полей формы бронирования
const (
	fieldCheckIn  = "check_in"
	fieldCheckOut = "check_out"
	fieldFullName = "full_name"
	fieldEmail    = "email"
	fieldPhone    = "phone"
)

// CreateBookingForm HTTP form model
type CreateBookingForm struct {
	CheckIn  string
	CheckOut string
	FullName string
	Email    string
	Phone    string
}

// formFromRequest читает поля формы из тела запроса
func formFromRequest(r *http.Request) CreateBookingForm {
	return CreateBookingForm{
		CheckIn:  r.PostFormValue(fieldCheckIn),
		CheckOut: r.PostFormValue(fieldCheckOut),
		FullName: r.PostFormValue(fieldFullName),
		Email:    r.PostFormValue(fieldEmail),
		Phone:    r.PostFormValue(fieldPhone),
	}
}

// ToUseCaseRequest конвертирует форму в модель use case
func (f CreateBookingForm) ToUseCaseRequest(roomID int64) *createBooking.Request {
	return &createBooking.Request{
		RoomID:   roomID,
		CheckIn:  f.CheckIn,
		CheckOut: f.CheckOut,
		FullName: f.FullName,
		Email:    f.Email,
		Phone:    f.Phone,
	}
}

// ToFormState возвращает введённые значения обратно в форму
func (f CreateBookingForm) ToFormState(roomID int64, message string) booking_form.FormState {
	return booking_form.FormState{
		RoomID:   roomID,
		CheckIn:  strings.TrimSpace(f.CheckIn),
		CheckOut: strings.TrimSpace(f.CheckOut),
		Values: booking_form.FormValues{
			FullName: f.FullName,
			Email:    f.Email,
			Phone:    f.Phone,
		},
		Error: message,
	}
}
