package booking_success

// Page данные экрана подтверждения
type Page struct {
	Reference string
	CheckIn   string
	CheckOut  string
	Nights    int
	HasDates  bool
	GuestName string
}
