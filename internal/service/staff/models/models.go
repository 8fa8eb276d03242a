package models

import "github.com/m04kA/SorftInn-Web/internal/domain"

// LoginResponse результат успешного входа
type LoginResponse struct {
	AccessToken string
	Username    string
	Email       string
}

// BookingRow строка таблицы последних бронирований
type BookingRow struct {
	ID         int64
	Guest      string
	Room       string
	CheckIn    string
	CheckOut   string
	Status     string
	Badge      domain.BadgeKind
	CanConfirm bool
	CanCancel  bool
}

// CustomerRow строка таблицы последних гостей
type CustomerRow struct {
	Name        string
	Email       string
	Phone       string
	LastBooking string // пусто, если бронирований не было
}

// DashboardResponse данные панели сотрудника
type DashboardResponse struct {
	KPI             domain.KPI
	RecentBookings  []BookingRow
	RecentCustomers []CustomerRow
}

// FromDomainDashboard конвертирует доменную модель в модель представления
func FromDomainDashboard(d *domain.Dashboard) *DashboardResponse {
	resp := &DashboardResponse{
		KPI:             d.KPI,
		RecentBookings:  make([]BookingRow, 0, len(d.RecentBookings)),
		RecentCustomers: make([]CustomerRow, 0, len(d.RecentCustomers)),
	}

	for _, b := range d.RecentBookings {
		resp.RecentBookings = append(resp.RecentBookings, BookingRow{
			ID:         b.ID,
			Guest:      b.Guest,
			Room:       b.Room,
			CheckIn:    b.CheckIn,
			CheckOut:   b.CheckOut,
			Status:     b.Status,
			Badge:      b.Badge(),
			CanConfirm: b.CanConfirm(),
			CanCancel:  b.CanCancel(),
		})
	}

	for _, c := range d.RecentCustomers {
		row := CustomerRow{Name: c.Name, Email: c.Email, Phone: c.Phone}
		if c.LastBooking != nil {
			row.LastBooking = *c.LastBooking
		}
		resp.RecentCustomers = append(resp.RecentCustomers, row)
	}

	return resp
}
