package booking_form

import "github.com/m04kA/SorftInn-Web/internal/web"

// FormValues введённые гостем данные (возвращаются в форму при ошибке)
type FormValues struct {
	FullName string
	Email    string
	Phone    string
}

// FormState состояние формы бронирования для рендера
type FormState struct {
	RoomID   int64
	CheckIn  string
	CheckOut string
	Values   FormValues
	Error    string
}

// Page данные страницы бронирования. Room == nil, если комнату показать нельзя.
type Page struct {
	Room     *web.RoomCard
	CheckIn  string
	CheckOut string
	Action   string
	Form     FormValues
	Error    string
}
