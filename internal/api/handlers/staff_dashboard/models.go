package staff_dashboard

import (
	"github.com/m04kA/SorftInn-Web/internal/domain"
	staffService "github.com/m04kA/SorftInn-Web/internal/service/staff"
	"github.com/m04kA/SorftInn-Web/internal/service/staff/models"
)

// Page данные панели сотрудника. Dashboard == nil, если данные не загрузились.
type Page struct {
	Dashboard       *models.DashboardResponse
	Submissions     []SubmissionRow
	ShowSubmissions bool
	Notice          string
	Error           string
}

// SubmissionRow попытка бронирования с сайта из журнала
type SubmissionRow struct {
	Reference string
	RoomID    int64
	Guest     string
	Email     string
	CheckIn   string
	CheckOut  string
	Outcome   string
	Badge     domain.BadgeKind
	Message   string
	CreatedAt string
}

func newSubmissionRows(items []domain.Submission) []SubmissionRow {
	rows := make([]SubmissionRow, 0, len(items))
	for _, s := range items {
		row := SubmissionRow{
			RoomID:    s.RoomID,
			Guest:     s.GuestName,
			Email:     s.GuestEmail,
			CheckIn:   domain.DateRange{CheckIn: s.CheckIn}.CheckInDate(),
			CheckOut:  domain.DateRange{CheckOut: s.CheckOut}.CheckOutDate(),
			Outcome:   string(s.Outcome),
			Badge:     outcomeBadge(s.Outcome),
			CreatedAt: s.CreatedAt.Format("02 Jan 15:04"),
		}
		if s.Reference != nil {
			row.Reference = *s.Reference
		}
		if s.Message != nil {
			row.Message = *s.Message
		}
		rows = append(rows, row)
	}
	return rows
}

func outcomeBadge(o domain.SubmissionOutcome) domain.BadgeKind {
	switch o {
	case domain.OutcomeAccepted:
		return domain.BadgeSuccess
	case domain.OutcomeRejected:
		return domain.BadgeDanger
	default:
		return domain.BadgeWarning
	}
}

// Коды результата действия, передаваемые через query string после редиректа
const (
	NoticeConfirmed = "confirmed"
	NoticeCancelled = "cancelled"
	NoticeDeleted   = "deleted"

	ErrorNotFound      = "not_found"
	ErrorInvalidStatus = "invalid_status"
	ErrorFailed        = "failed"
)

var notices = map[string]string{
	NoticeConfirmed: "Booking confirmed.",
	NoticeCancelled: "Booking cancelled.",
	NoticeDeleted:   "Booking deleted.",
}

var errorMessages = map[string]string{
	ErrorNotFound:      staffService.MsgBookingNotFound,
	ErrorInvalidStatus: staffService.MsgInvalidStatus,
	ErrorFailed:        staffService.MsgActionFailed,
}
