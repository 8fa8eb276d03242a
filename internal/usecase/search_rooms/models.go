package search_rooms

import "github.com/m04kA/SorftInn-Web/internal/domain"

// Request модель запроса поиска свободных комнат (значения из формы или query string)
type Request struct {
	CheckIn  string
	CheckOut string
}

// Response модель ответа со свободными комнатами
type Response struct {
	Dates  domain.DateRange
	Nights int
	Offers []domain.RoomOffer // в порядке ответа бэкенда
}
