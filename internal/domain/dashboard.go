package domain

import "strings"

// BookingStatus values the staff dashboard can set
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ManageableStatuses statuses accepted by the manage endpoint
var ManageableStatuses = []string{StatusConfirmed, StatusCancelled}

// BadgeKind visual category of a booking status
type BadgeKind string

const (
	BadgeSuccess BadgeKind = "success"
	BadgeWarning BadgeKind = "warning"
	BadgeDanger  BadgeKind = "danger"
	BadgeNeutral BadgeKind = "neutral"
)

// KPI summary counters of the staff dashboard
type KPI struct {
	TotalBookings        int
	ActiveGuests         int
	AvailableRooms       int
	PendingConfirmations int
}

// BookingSummary is a row of the recent bookings table
type BookingSummary struct {
	ID       int64
	Guest    string
	Room     string
	CheckIn  string
	CheckOut string
	Status   string
}

// Customer is a row of the recent customers table
type Customer struct {
	Name        string
	Email       string
	Phone       string
	LastBooking *string
}

// Dashboard is the staff overview returned by the backend
type Dashboard struct {
	KPI             KPI
	RecentBookings  []BookingSummary
	RecentCustomers []Customer
}

// Badge classifies a free-form backend status
func (b BookingSummary) Badge() BadgeKind {
	return StatusBadge(b.Status)
}

// CanConfirm returns true if the booking is still waiting for confirmation
func (b BookingSummary) CanConfirm() bool {
	return strings.Contains(strings.ToLower(b.Status), "pending")
}

// CanCancel returns true if the booking has not been cancelled yet
func (b BookingSummary) CanCancel() bool {
	return !strings.Contains(strings.ToLower(b.Status), "cancelled")
}

// StatusBadge maps a status string to its badge kind
func StatusBadge(status string) BadgeKind {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "confirmed") || strings.Contains(s, "checked in"):
		return BadgeSuccess
	case strings.Contains(s, "pending"):
		return BadgeWarning
	case strings.Contains(s, "cancelled") || strings.Contains(s, "rejected"):
		return BadgeDanger
	default:
		return BadgeNeutral
	}
}

// IsManageableStatus returns true if staff may set this status
func IsManageableStatus(status string) bool {
	for _, s := range ManageableStatuses {
		if s == status {
			return true
		}
	}
	return false
}
