package create_booking

import (
	"context"
	"net/http"

	"github.com/m04kA/SorftInn-Web/internal/api/handlers/booking_form"
	createBooking "github.com/m04kA/SorftInn-Web/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// FormRenderer повторно показывает форму бронирования с ошибкой
type FormRenderer interface {
	RenderForm(w http.ResponseWriter, r *http.Request, status int, state booking_form.FormState)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
