package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SorftInn-Web/internal/domain"
	"github.com/m04kA/SorftInn-Web/internal/integrations/hotelapi"
)

// UseCase use case отправки бронирования
type UseCase struct {
	client     BookingClient
	journal    SubmissionJournal
	references ReferenceGenerator
	outcomes   OutcomeRecorder
	logger     Logger
}

// NewUseCase создает новый экземпляр use case.
// journal и outcomes могут быть nil.
func NewUseCase(
	client BookingClient,
	journal SubmissionJournal,
	outcomes OutcomeRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:     client,
		journal:    journal,
		references: UUIDReferenceGenerator{},
		outcomes:   outcomes,
		logger:     logger,
	}
}

// Execute выполняет одну попытку бронирования, без повторов.
// Незаполненная форма и некорректные даты отклоняются без запроса к бэкенду.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	booking, dates, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed for room_id=%d: %v", req.RoomID, err)
		uc.recordOutcome(outcomeInvalid)
		return nil, err
	}

	uc.logger.Info("CreateBooking: room_id=%d, check_in=%s, check_out=%s", booking.RoomID, booking.CheckIn, booking.CheckOut)

	created, err := uc.client.CreateBooking(ctx, booking)
	if err != nil {
		return nil, uc.handleFailure(ctx, booking, dates, err)
	}
	if created == nil {
		created = &hotelapi.CreatedBooking{}
	}

	resp := &Response{
		Reference: uc.references.NewReference(),
		BackendID: created.ID,
		RoomID:    booking.RoomID,
		Dates:     dates,
		Nights:    dates.Nights(),
	}

	submission := newSubmission(booking, dates, domain.OutcomeAccepted)
	submission.Reference = &resp.Reference
	if created.ID > 0 {
		submission.BackendID = &created.ID
	}
	uc.journalSubmission(ctx, submission)
	uc.recordOutcome(string(domain.OutcomeAccepted))

	uc.logger.Info("CreateBooking: room_id=%d accepted, reference=%s", booking.RoomID, resp.Reference)
	return resp, nil
}

func (uc *UseCase) handleFailure(ctx context.Context, booking domain.BookingRequest, dates domain.DateRange, err error) error {
	var (
		rejected *hotelapi.BookingRejectedError
		netErr   *hotelapi.NetworkError
	)

	switch {
	case errors.As(err, &rejected):
		message := rejected.Message()
		submission := newSubmission(booking, dates, domain.OutcomeRejected)
		submission.Message = &message
		uc.journalSubmission(ctx, submission)
		uc.recordOutcome(string(domain.OutcomeRejected))

		uc.logger.Warn("CreateBooking: room_id=%d rejected: %s", booking.RoomID, message)
		return fmt.Errorf("%w: %w", ErrBookingRejected, err)

	case errors.As(err, &netErr):
		message := netErr.Message()
		submission := newSubmission(booking, dates, domain.OutcomeNetworkFailure)
		submission.Message = &message
		uc.journalSubmission(ctx, submission)
		uc.recordOutcome(string(domain.OutcomeNetworkFailure))

		uc.logger.Error("CreateBooking: room_id=%d network failure (%s): %v", booking.RoomID, netErr.Kind, err)
		return fmt.Errorf("%w: %w", ErrNetworkFailure, err)

	default:
		uc.recordOutcome(outcomeError)
		uc.logger.Error("CreateBooking: room_id=%d failed: %v", booking.RoomID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// journalSubmission пишет попытку в журнал; ошибка журнала не влияет на результат бронирования
func (uc *UseCase) journalSubmission(ctx context.Context, s *domain.Submission) {
	if uc.journal == nil {
		return
	}
	if _, err := uc.journal.Create(ctx, s); err != nil {
		uc.logger.Error("CreateBooking: failed to journal %s submission for room_id=%d: %v", s.Outcome, s.RoomID, err)
	}
}

func (uc *UseCase) recordOutcome(outcome string) {
	if uc.outcomes != nil {
		uc.outcomes.IncBookingOutcome(outcome)
	}
}

func newSubmission(booking domain.BookingRequest, dates domain.DateRange, outcome domain.SubmissionOutcome) *domain.Submission {
	return &domain.Submission{
		RoomID:     booking.RoomID,
		CheckIn:    dates.CheckIn,
		CheckOut:   dates.CheckOut,
		GuestName:  booking.GuestName,
		GuestEmail: booking.GuestEmail,
		GuestPhone: booking.GuestPhone,
		Outcome:    outcome,
	}
}

// UserMessage возвращает единственное сообщение для пользователя; технические детали не раскрываются
func UserMessage(err error) string {
	if errors.Is(err, ErrIncompleteForm) {
		return MsgIncompleteForm
	}
	if msg := domain.DateErrorMessage(err); msg != "" {
		return msg
	}

	var rejected *hotelapi.BookingRejectedError
	if errors.As(err, &rejected) {
		return rejected.Message()
	}

	var netErr *hotelapi.NetworkError
	if errors.As(err, &netErr) {
		return netErr.Message()
	}

	return MsgBookingFailed
}
