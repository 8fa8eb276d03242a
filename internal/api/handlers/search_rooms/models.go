package search_rooms

import (
	"github.com/m04kA/SorftInn-Web/internal/domain"
	searchRooms "github.com/m04kA/SorftInn-Web/internal/usecase/search_rooms"
	"github.com/m04kA/SorftInn-Web/internal/web"
)

// Page данные страницы результатов поиска
type Page struct {
	Search     web.SearchForm
	Rooms      []web.RoomCard
	EmptyText  string
	HasDates   bool
	Nights     int
	FetchError string
	RetryURL   string
}

// RoomsResponse HTTP response model
type RoomsResponse struct {
	CheckIn  string         `json:"checkIn"`
	CheckOut string         `json:"checkOut"`
	Nights   int            `json:"nights"`
	Rooms    []RoomResponse `json:"rooms"`
}

// RoomResponse HTTP response model
type RoomResponse struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Number        string       `json:"number"`
	Type          string       `json:"type"`
	Capacity      int          `json:"capacity"`
	Description   string       `json:"description"`
	PricePerNight domain.Price `json:"pricePerNight"`
	Total         *float64     `json:"total"`
	Images        []string     `json:"images"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *searchRooms.Response) RoomsResponse {
	out := RoomsResponse{
		CheckIn:  resp.Dates.CheckInDate(),
		CheckOut: resp.Dates.CheckOutDate(),
		Nights:   resp.Nights,
		Rooms:    make([]RoomResponse, 0, len(resp.Offers)),
	}

	for _, offer := range resp.Offers {
		room := RoomResponse{
			ID:            offer.Room.ID,
			Name:          offer.Room.Name,
			Number:        offer.Room.Number,
			Type:          offer.Room.Type,
			Capacity:      offer.Room.Capacity,
			Description:   offer.Room.Description,
			PricePerNight: offer.Room.NightlyRate,
			Images:        offer.Images,
		}
		if offer.HasTotal {
			total := offer.Total
			room.Total = &total
		}
		out.Rooms = append(out.Rooms, room)
	}

	return out
}
