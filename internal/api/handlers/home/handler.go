package home

import (
	"net/http"
	"time"

	"github.com/m04kA/SorftInn-Web/internal/api/handlers"
	"github.com/m04kA/SorftInn-Web/internal/domain"
	searchRooms "github.com/m04kA/SorftInn-Web/internal/usecase/search_rooms"
	"github.com/m04kA/SorftInn-Web/internal/web"
)

const msgNoRoomsTonight = "No rooms are free tonight. Try other dates above."

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

// Handle GET /
// Сбой загрузки комнат не ломает страницу: форма поиска остаётся доступной
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	tonight := domain.Tonight(now)
	page := Page{
		Search:    web.NewSearchForm(tonight.CheckInDate(), tonight.CheckOutDate(), now, ""),
		EmptyText: msgNoRoomsTonight,
	}

	resp, err := h.useCase.ExecuteTonight(r.Context())
	if err != nil {
		h.logger.Warn("GET / - Failed to load tonight's rooms: %v", err)
		page.RoomsError = searchRooms.UserMessage(err)
	} else {
		page.Rooms = web.NewRoomCards(resp.Offers, resp.Dates)
	}

	handlers.RenderPage(w, h.renderer, h.logger, http.StatusOK, "home", "", page)
}
