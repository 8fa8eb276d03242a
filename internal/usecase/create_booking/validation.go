package create_booking

import (
	"github.com/m04kA/SorftInn-Web/internal/domain"
)

// validateRequest проверяет заполненность формы и даты.
// Возвращает нормализованный запрос к бэкенду и период проживания.
func validateRequest(req *Request) (domain.BookingRequest, domain.DateRange, error) {
	booking := domain.BookingRequest{
		RoomID:     req.RoomID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		GuestName:  req.FullName,
		GuestEmail: req.Email,
		GuestPhone: req.Phone,
	}
	if !booking.IsComplete() {
		return domain.BookingRequest{}, domain.DateRange{}, ErrIncompleteForm
	}
	booking = booking.Trimmed()

	dates, err := domain.ParseDateRange(booking.CheckIn, booking.CheckOut)
	if err != nil {
		return domain.BookingRequest{}, domain.DateRange{}, err
	}
	booking.CheckIn = dates.CheckInDate()
	booking.CheckOut = dates.CheckOutDate()

	return booking, dates, nil
}
