package domain

import "strings"

// BookingRequest is the guest's booking form. All fields are required.
type BookingRequest struct {
	RoomID     int64
	CheckIn    string
	CheckOut   string
	GuestName  string
	GuestEmail string
	GuestPhone string
}

// IsComplete reports whether every field is present and non-empty
func (r BookingRequest) IsComplete() bool {
	return r.RoomID > 0 &&
		strings.TrimSpace(r.CheckIn) != "" &&
		strings.TrimSpace(r.CheckOut) != "" &&
		strings.TrimSpace(r.GuestName) != "" &&
		strings.TrimSpace(r.GuestEmail) != "" &&
		strings.TrimSpace(r.GuestPhone) != ""
}

// Trimmed returns a copy with surrounding whitespace removed from every text field
func (r BookingRequest) Trimmed() BookingRequest {
	return BookingRequest{
		RoomID:     r.RoomID,
		CheckIn:    strings.TrimSpace(r.CheckIn),
		CheckOut:   strings.TrimSpace(r.CheckOut),
		GuestName:  strings.TrimSpace(r.GuestName),
		GuestEmail: strings.TrimSpace(r.GuestEmail),
		GuestPhone: strings.TrimSpace(r.GuestPhone),
	}
}
