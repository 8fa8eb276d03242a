package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SorftInn-Web/internal/api/handlers"
	"github.com/m04kA/SorftInn-Web/internal/domain"
	createBooking "github.com/m04kA/SorftInn-Web/internal/usecase/create_booking"
	"github.com/m04kA/SorftInn-Web/internal/web"
)

const (
	msgInvalidRoomID = "We couldn't find that room. Please go back and pick another one."
	msgInvalidForm   = "We couldn't read the booking form. Please try again."
)

type Handler struct {
	useCase  CreateBookingUseCase
	form     FormRenderer
	renderer handlers.PageRenderer
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, form FormRenderer, renderer handlers.PageRenderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		form:     form,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle POST /bookings/{roomId}
// Успех: 303 на экран подтверждения. Ошибка: форма с единственным сообщением для гостя.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.ParseIDVar(r, "roomId")
	if err != nil {
		h.logger.Warn("POST /bookings/{roomId} - Invalid room ID: %v", err)
		handlers.RenderError(w, h.renderer, h.logger, http.StatusNotFound, "Room not found", msgInvalidRoomID, "/")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /bookings/%d - Invalid form body: %v", roomID, err)
		handlers.RenderError(w, h.renderer, h.logger, http.StatusBadRequest, "Booking failed", msgInvalidForm, "/")
		return
	}

	form := formFromRequest(r)
	result, err := h.useCase.Execute(r.Context(), form.ToUseCaseRequest(roomID))
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /bookings/%d - Booking failed: %v", roomID, err)
		} else {
			h.logger.Warn("POST /bookings/%d - Booking not accepted: %v", roomID, err)
		}
		h.form.RenderForm(w, r, status, form.ToFormState(roomID, createBooking.UserMessage(err)))
		return
	}

	h.logger.Info("POST /bookings/%d - Booking accepted: reference=%s", roomID, result.Reference)
	handlers.Redirect(w, r, web.SuccessURL(roomID, result.Reference, result.Dates))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, createBooking.ErrIncompleteForm),
		errors.Is(err, domain.ErrMissingDates),
		errors.Is(err, domain.ErrInvalidDates):
		return http.StatusBadRequest
	case errors.Is(err, createBooking.ErrBookingRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, createBooking.ErrNetworkFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
