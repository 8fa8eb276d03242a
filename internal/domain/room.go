package domain

// Room is a hotel room as described by the backend. This service never mutates it.
type Room struct {
	ID          int64
	Name        string
	Number      string
	Type        string
	NightlyRate Price
	Capacity    int
	Description string
	Images      []string // raw image references, in backend order
}
