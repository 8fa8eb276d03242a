package hotelapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m04kA/SorftInn-Web/internal/domain"
)

// CreateBooking отправляет бронирование в бэкенд.
// Отказ бэкенда возвращается как *BookingRejectedError, сбой сети как *NetworkError.
func (c *Client) CreateBooking(ctx context.Context, booking domain.BookingRequest) (*CreatedBooking, error) {
	body := createBookingRequest{
		Room:     booking.RoomID,
		CheckIn:  booking.CheckIn,
		CheckOut: booking.CheckOut,
		FullName: booking.GuestName,
		Email:    booking.GuestEmail,
		Phone:    booking.GuestPhone,
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/bookings/create/", body, "")
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req, "bookings_create")
	if err != nil {
		c.log.Error("Booking request for room_id=%d failed: %v", booking.RoomID, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fields, _ := parseFieldErrors(readErrorBody(resp))
		rejected := &BookingRejectedError{Status: resp.StatusCode, Fields: fields}
		c.log.Warn("Booking for room_id=%d rejected with status %d: %s", booking.RoomID, resp.StatusCode, rejected.Message())
		return nil, rejected
	}

	// Тело успешного ответа не обязательно
	var created CreatedBooking
	_ = json.NewDecoder(resp.Body).Decode(&created)

	c.log.Info("Booking for room_id=%d accepted, backend id=%d", booking.RoomID, created.ID)
	return &created, nil
}
