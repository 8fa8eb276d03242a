package search_rooms

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SorftInn-Web/internal/api/handlers"
	"github.com/m04kA/SorftInn-Web/internal/domain"
	searchRooms "github.com/m04kA/SorftInn-Web/internal/usecase/search_rooms"
	"github.com/m04kA/SorftInn-Web/internal/web"
)

const (
	pageTitle      = "Available rooms"
	msgNoRoomsFree = "No rooms are available for these dates. Try different dates."
)

type Handler struct {
	useCase  SearchRoomsUseCase
	renderer handlers.PageRenderer
	logger   Logger
	now      func() time.Time
}

func NewHandler(useCase SearchRoomsUseCase, renderer handlers.PageRenderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
}

// Handle GET /bookings?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := requestFromQuery(r)
	page := Page{
		Search:    web.NewSearchForm(req.CheckIn, req.CheckOut, h.now(), ""),
		EmptyText: msgNoRoomsFree,
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		status := http.StatusBadGateway
		if isDateError(err) {
			status = http.StatusBadRequest
			page.Search.Error = searchRooms.UserMessage(err)
			h.logger.Warn("GET /bookings - Invalid dates: check_in=%q, check_out=%q", req.CheckIn, req.CheckOut)
		} else {
			page.HasDates = true
			page.FetchError = searchRooms.UserMessage(err)
			page.RetryURL = web.SearchURL(req.CheckIn, req.CheckOut)
			h.logger.Error("GET /bookings - Failed to load rooms: %v", err)
		}
		handlers.RenderPage(w, h.renderer, h.logger, status, "bookings", pageTitle, page)
		return
	}

	page.HasDates = true
	page.Nights = resp.Nights
	page.Rooms = web.NewRoomCards(resp.Offers, resp.Dates)

	h.logger.Info("GET /bookings - %d rooms for %s..%s", len(page.Rooms), resp.Dates.CheckInDate(), resp.Dates.CheckOutDate())
	handlers.RenderPage(w, h.renderer, h.logger, http.StatusOK, "bookings", pageTitle, page)
}

// HandleJSON GET /api/v1/rooms/available?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) HandleJSON(w http.ResponseWriter, r *http.Request) {
	req := requestFromQuery(r)

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case isDateError(err):
			h.logger.Warn("GET /api/v1/rooms/available - Invalid dates: %v", err)
			handlers.RespondBadRequest(w, searchRooms.UserMessage(err))
		case errors.Is(err, searchRooms.ErrAvailabilityUnavailable):
			h.logger.Error("GET /api/v1/rooms/available - Backend failure: %v", err)
			handlers.RespondBadGateway(w, searchRooms.UserMessage(err))
		default:
			h.logger.Error("GET /api/v1/rooms/available - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}

func requestFromQuery(r *http.Request) *searchRooms.Request {
	q := r.URL.Query()
	return &searchRooms.Request{
		CheckIn:  q.Get("checkIn"),
		CheckOut: q.Get("checkOut"),
	}
}

func isDateError(err error) bool {
	return errors.Is(err, domain.ErrMissingDates) || errors.Is(err, domain.ErrInvalidDates)
}
