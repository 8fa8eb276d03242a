package web

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/SorftInn-Web/internal/domain"
)

// RoomCard комната с рассчитанной стоимостью для списка и формы бронирования
type RoomCard struct {
	ID          int64
	Name        string
	Number      string
	Type        string
	Capacity    int
	Description string
	Rate        domain.Price
	Images      []string
	Cover       string
	Nights      int
	Total       float64
	HasTotal    bool
	BookURL     string
}

// NewRoomCard строит карточку из рассчитанного предложения
func NewRoomCard(offer domain.RoomOffer, dates domain.DateRange) RoomCard {
	return RoomCard{
		ID:          offer.Room.ID,
		Name:        offer.Room.Name,
		Number:      offer.Room.Number,
		Type:        offer.Room.Type,
		Capacity:    offer.Room.Capacity,
		Description: offer.Room.Description,
		Rate:        offer.Room.NightlyRate,
		Images:      offer.Images,
		Cover:       offer.CoverImage(),
		Nights:      offer.Nights,
		Total:       offer.Total,
		HasTotal:    offer.HasTotal,
		BookURL:     BookingURL(offer.Room.ID, dates),
	}
}

// NewRoomCards строит карточки в исходном порядке
func NewRoomCards(offers []domain.RoomOffer, dates domain.DateRange) []RoomCard {
	cards := make([]RoomCard, 0, len(offers))
	for _, offer := range offers {
		cards = append(cards, NewRoomCard(offer, dates))
	}
	return cards
}

// SearchURL ссылка на результаты поиска с теми же датами (повтор запроса)
func SearchURL(checkIn, checkOut string) string {
	return "/bookings?" + dateQuery(checkIn, checkOut).Encode()
}

// BookingURL ссылка на форму бронирования комнаты
func BookingURL(roomID int64, dates domain.DateRange) string {
	return fmt.Sprintf("/bookings/%d?%s", roomID, dateQuery(dates.CheckInDate(), dates.CheckOutDate()).Encode())
}

// SuccessURL ссылка на экран подтверждения
func SuccessURL(roomID int64, reference string, dates domain.DateRange) string {
	q := dateQuery(dates.CheckInDate(), dates.CheckOutDate())
	q.Set("ref", reference)
	return fmt.Sprintf("/bookings/%d/success?%s", roomID, q.Encode())
}

func dateQuery(checkIn, checkOut string) url.Values {
	q := url.Values{}
	q.Set("checkIn", checkIn)
	q.Set("checkOut", checkOut)
	return q
}

// SearchForm значения формы выбора дат
type SearchForm struct {
	CheckIn  string
	CheckOut string
	MinDate  string
	Error    string
}

// NewSearchForm заполняет форму; MinDate не даёт выбрать прошедший день
func NewSearchForm(checkIn, checkOut string, now time.Time, errMsg string) SearchForm {
	return SearchForm{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		MinDate:  domain.Tonight(now).CheckInDate(),
		Error:    errMsg,
	}
}
