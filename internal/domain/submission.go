package domain

import "time"

// SubmissionOutcome result of a booking submission attempt
type SubmissionOutcome string

const (
	OutcomeAccepted       SubmissionOutcome = "accepted"
	OutcomeRejected       SubmissionOutcome = "rejected"
	OutcomeNetworkFailure SubmissionOutcome = "network_failure"
)

// Submission is a journal record of one booking attempt.
// Reference is the display-only code shown to the guest, not a backend booking ID.
type Submission struct {
	ID         int64
	Reference  *string
	BackendID  *int64
	RoomID     int64
	CheckIn    time.Time
	CheckOut   time.Time
	GuestName  string
	GuestEmail string
	GuestPhone string
	Outcome    SubmissionOutcome
	Message    *string
	CreatedAt  time.Time
}

// IsAccepted returns true if the backend committed the booking
func (s *Submission) IsAccepted() bool {
	return s.Outcome == OutcomeAccepted
}

// Nights returns the stay length of the recorded range
func (s *Submission) Nights() int {
	return DateRange{CheckIn: s.CheckIn, CheckOut: s.CheckOut}.Nights()
}
