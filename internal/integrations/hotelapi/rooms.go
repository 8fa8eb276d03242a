package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/SorftInn-Web/internal/domain"
)

// FetchAvailableRooms получает комнаты, свободные на весь период.
// Ответ всегда запрашивается без кэша.
func (c *Client) FetchAvailableRooms(ctx context.Context, dates domain.DateRange) ([]domain.Room, error) {
	body := availabilityRequest{
		CheckIn:  dates.CheckInDate(),
		CheckOut: dates.CheckOutDate(),
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/rooms/available/", body, "")
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.do(req, "rooms_available")
	if err != nil {
		c.log.Error("Availability request failed for %s..%s: %v", body.CheckIn, body.CheckOut, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("Availability request returned status %d for %s..%s", resp.StatusCode, body.CheckIn, body.CheckOut)
		return nil, &AvailabilityFetchError{Status: resp.StatusCode}
	}

	apiRooms, err := decodeRooms(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode rooms: %v", ErrInvalidResponse, err)
	}

	rooms := make([]domain.Room, 0, len(apiRooms))
	for _, r := range apiRooms {
		rooms = append(rooms, r.toDomain())
	}

	c.log.Info("Fetched %d available rooms for %s..%s", len(rooms), body.CheckIn, body.CheckOut)
	return rooms, nil
}

// GetRoom получает комнату по идентификатору
func (c *Client) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/rooms/%d/", roomID), nil, "")
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req, "room_detail")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrRoomNotFound
	default:
		return nil, &StatusError{Endpoint: "room_detail", Status: resp.StatusCode}
	}

	var r apiRoom
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: failed to decode room: %v", ErrInvalidResponse, err)
	}

	room := r.toDomain()
	return &room, nil
}

// decodeRooms принимает массив комнат или обёртку {"results"} / {"data"}.
// Любая другая форма даёт пустой список.
func decodeRooms(r io.Reader) ([]apiRoom, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	list := bytes.TrimSpace(raw)
	if len(list) > 0 && list[0] == '{' {
		var env roomsEnvelope
		if err := json.Unmarshal(list, &env); err != nil {
			return nil, err
		}
		switch {
		case isJSONArray(env.Results):
			list = env.Results
		case isJSONArray(env.Data):
			list = env.Data
		default:
			return nil, nil
		}
	}

	if !isJSONArray(list) {
		return nil, nil
	}

	var rooms []apiRoom
	if err := json.Unmarshal(list, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func isJSONArray(data json.RawMessage) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}
