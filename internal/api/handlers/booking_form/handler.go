package booking_form

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SorftInn-Web/internal/api/handlers"
	"github.com/m04kA/SorftInn-Web/internal/domain"
	getRoomOffer "github.com/m04kA/SorftInn-Web/internal/usecase/get_room_offer"
	"github.com/m04kA/SorftInn-Web/internal/web"
)

const (
	pageTitle        = "Book a room"
	msgInvalidRoomID = "We couldn't find that room. Please go back and pick another one."
)

type Handler struct {
	useCase  GetRoomOfferUseCase
	renderer handlers.PageRenderer
	logger   Logger
}

func NewHandler(useCase GetRoomOfferUseCase, renderer handlers.PageRenderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /bookings/{roomId}?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.ParseIDVar(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /bookings/{roomId} - Invalid room ID: %v", err)
		handlers.RenderError(w, h.renderer, h.logger, http.StatusNotFound, "Room not found", msgInvalidRoomID, "/")
		return
	}

	q := r.URL.Query()
	h.RenderForm(w, r, http.StatusOK, FormState{
		RoomID:   roomID,
		CheckIn:  q.Get("checkIn"),
		CheckOut: q.Get("checkOut"),
	})
}

// RenderForm загружает комнату и рендерит форму.
// Если state.Error задан, статус и сообщение вызывающего сохраняются.
func (h *Handler) RenderForm(w http.ResponseWriter, r *http.Request, status int, state FormState) {
	page := Page{
		CheckIn:  state.CheckIn,
		CheckOut: state.CheckOut,
		Action:   fmt.Sprintf("/bookings/%d", state.RoomID),
		Form:     state.Values,
		Error:    state.Error,
	}

	resp, err := h.useCase.Execute(r.Context(), &getRoomOffer.Request{
		RoomID:   state.RoomID,
		CheckIn:  state.CheckIn,
		CheckOut: state.CheckOut,
	})
	if err != nil {
		if page.Error == "" {
			page.Error = getRoomOffer.UserMessage(err)
			status = statusFor(err)
		}
		h.logger.Warn("GET /bookings/%d - Failed to load room offer: %v", state.RoomID, err)
		handlers.RenderPage(w, h.renderer, h.logger, status, "booking_form", pageTitle, page)
		return
	}

	card := web.NewRoomCard(resp.Offer, resp.Dates)
	page.Room = &card
	page.CheckIn = resp.Dates.CheckInDate()
	page.CheckOut = resp.Dates.CheckOutDate()

	handlers.RenderPage(w, h.renderer, h.logger, status, "booking_form", card.Name, page)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingDates), errors.Is(err, domain.ErrInvalidDates):
		return http.StatusBadRequest
	case errors.Is(err, getRoomOffer.ErrRoomNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
