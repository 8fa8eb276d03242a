package home

import "github.com/m04kA/SorftInn-Web/internal/web"

// Page данные главной страницы
type Page struct {
	Search     web.SearchForm
	Rooms      []web.RoomCard
	RoomsError string
	EmptyText  string
}
