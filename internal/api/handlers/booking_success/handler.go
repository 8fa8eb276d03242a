package booking_success

import (
	"net/http"
	"regexp"

	"github.com/m04kA/SorftInn-Web/internal/api/handlers"
	"github.com/m04kA/SorftInn-Web/internal/domain"
)

const pageTitle = "Booking received"

var referencePattern = regexp.MustCompile(`^SFT-[0-9A-Z]{6}$`)

type Handler struct {
	journal  SubmissionLookup
	renderer handlers.PageRenderer
	logger   Logger
}

// NewHandler journal может быть nil, тогда детали берутся из query string
func NewHandler(journal SubmissionLookup, renderer handlers.PageRenderer, logger Logger) *Handler {
	return &Handler{
		journal:  journal,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /bookings/{roomId}/success?ref=SFT-XXXXXX&checkIn=...&checkOut=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.ParseIDVar(r, "roomId")
	q := r.URL.Query()
	ref := q.Get("ref")
	if err != nil || !referencePattern.MatchString(ref) {
		h.logger.Warn("GET /bookings/{roomId}/success - Missing or malformed reference %q", ref)
		handlers.Redirect(w, r, "/")
		return
	}

	page := Page{Reference: ref}
	if dates, err := domain.ParseDateRange(q.Get("checkIn"), q.Get("checkOut")); err == nil {
		page.setDates(dates)
	}

	if h.journal != nil {
		submission, err := h.journal.GetByReference(r.Context(), ref)
		switch {
		case err != nil:
			h.logger.Warn("GET /bookings/%d/success - Journal lookup for %s failed: %v", roomID, ref, err)
		case submission.RoomID == roomID && submission.IsAccepted():
			page.GuestName = submission.GuestName
			page.setDates(domain.DateRange{CheckIn: submission.CheckIn, CheckOut: submission.CheckOut})
		}
	}

	handlers.RenderPage(w, h.renderer, h.logger, http.StatusOK, "success", pageTitle, page)
}

func (p *Page) setDates(dates domain.DateRange) {
	p.CheckIn = dates.CheckInDate()
	p.CheckOut = dates.CheckOutDate()
	p.Nights = dates.Nights()
	p.HasDates = true
}
