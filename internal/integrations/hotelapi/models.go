package hotelapi

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/m04kA/SorftInn-Web/internal/domain"
)

// availabilityRequest тело запроса доступных комнат
type availabilityRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// roomsEnvelope обёртка списка комнат ({"results": [...]} или {"data": [...]})
type roomsEnvelope struct {
	Results json.RawMessage `json:"results"`
	Data    json.RawMessage `json:"data"`
}

// apiRoom модель комнаты из бэкенда
type apiRoom struct {
	ID            int64        `json:"id"`
	RoomName      flexString   `json:"room_name"`
	RoomNumber    flexString   `json:"room_number"`
	RoomType      flexString   `json:"room_type"`
	Capacity      int          `json:"capacity"`
	PricePerNight domain.Price `json:"price_per_night"`
	Description   *string      `json:"description"`
	Images        []apiImage   `json:"images"`
}

func (r apiRoom) toDomain() domain.Room {
	room := domain.Room{
		ID:          r.ID,
		Name:        string(r.RoomName),
		Number:      string(r.RoomNumber),
		Type:        string(r.RoomType),
		NightlyRate: r.PricePerNight,
		Capacity:    r.Capacity,
	}
	if r.Description != nil {
		room.Description = *r.Description
	}
	for _, img := range r.Images {
		if ref := strings.TrimSpace(string(img)); ref != "" {
			room.Images = append(room.Images, ref)
		}
	}
	return room
}

// apiImage ссылка на изображение: строка или объект {"id", "image", "caption"}
type apiImage string

func (i *apiImage) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = apiImage(s)
		return nil
	}

	// Нераспознанный элемент превращается в пустую ссылку и отбрасывается в toDomain
	var obj struct {
		Image string `json:"image"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		*i = ""
		return nil
	}
	*i = apiImage(obj.Image)
	return nil
}

// flexString принимает строку или число (номер комнаты часто приходит числом)
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*s = flexString(n.String())
	}
	return nil
}

// createBookingRequest тело запроса создания бронирования
type createBookingRequest struct {
	Room     int64  `json:"room"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// CreatedBooking ответ бэкенда на успешное создание бронирования
type CreatedBooking struct {
	ID int64 `json:"id"`
}

// loginRequest тело запроса входа
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Tokens пара токенов бэкенда
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginResponse ответ на успешный вход
type LoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Tokens   Tokens `json:"tokens"`
}

// manageBookingRequest тело запроса смены статуса бронирования
type manageBookingRequest struct {
	Status string `json:"status"`
}

type apiKPI struct {
	TotalBookings        int `json:"total_bookings"`
	ActiveGuests         int `json:"active_guests"`
	AvailableRooms       int `json:"available_rooms"`
	PendingConfirmations int `json:"pending_confirmations"`
}

type apiBookingSummary struct {
	ID       int64      `json:"id"`
	Guest    flexString `json:"guest"`
	Room     flexString `json:"room"`
	CheckIn  string     `json:"check_in"`
	CheckOut string     `json:"check_out"`
	Status   string     `json:"status"`
}

type apiCustomer struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	LastBooking *string `json:"lastBooking"`
}

// apiDashboard модель дашборда из бэкенда
type apiDashboard struct {
	KPI             apiKPI              `json:"kpi"`
	RecentBookings  []apiBookingSummary `json:"recent_bookings"`
	RecentCustomers []apiCustomer       `json:"recent_customers"`
}

func (d apiDashboard) toDomain() *domain.Dashboard {
	dashboard := &domain.Dashboard{
		KPI: domain.KPI{
			TotalBookings:        d.KPI.TotalBookings,
			ActiveGuests:         d.KPI.ActiveGuests,
			AvailableRooms:       d.KPI.AvailableRooms,
			PendingConfirmations: d.KPI.PendingConfirmations,
		},
		RecentBookings:  make([]domain.BookingSummary, 0, len(d.RecentBookings)),
		RecentCustomers: make([]domain.Customer, 0, len(d.RecentCustomers)),
	}

	for _, b := range d.RecentBookings {
		dashboard.RecentBookings = append(dashboard.RecentBookings, domain.BookingSummary{
			ID:       b.ID,
			Guest:    string(b.Guest),
			Room:     string(b.Room),
			CheckIn:  b.CheckIn,
			CheckOut: b.CheckOut,
			Status:   b.Status,
		})
	}

	for _, c := range d.RecentCustomers {
		dashboard.RecentCustomers = append(dashboard.RecentCustomers, domain.Customer{
			Name:        c.Name,
			Email:       c.Email,
			Phone:       c.Phone,
			LastBooking: c.LastBooking,
		})
	}

	return dashboard
}
