package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SorftInn-Web/internal/domain"
	"github.com/m04kA/SorftInn-Web/internal/integrations/hotelapi"
	"github.com/m04kA/SorftInn-Web/internal/service/staff/models"
)

// Service сервис панели сотрудника
type Service struct {
	client StaffClient
	logger Logger
}

// NewService создает новый экземпляр сервиса сотрудника
func NewService(client StaffClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Login проверяет форму и выполняет вход через бэкенд
func (s *Service) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || utf8.RuneCountInString(password) < domain.MinPasswordLength {
		return nil, ErrInvalidCredentials
	}

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, hotelapi.ErrLoginRejected) {
			s.logger.Warn("Login: rejected for email=%s: %v", email, err)
			return nil, fmt.Errorf("%w: %w", ErrLoginRejected, err)
		}
		s.logger.Error("Login: backend error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	s.logger.Info("Login: user=%s signed in", resp.Username)
	return &models.LoginResponse{
		AccessToken: resp.Tokens.Access,
		Username:    resp.Username,
		Email:       resp.Email,
	}, nil
}

// Dashboard получает данные панели
func (s *Service) Dashboard(ctx context.Context, token string) (*models.DashboardResponse, error) {
	dashboard, err := s.client.GetDashboard(ctx, token)
	if err != nil {
		return nil, s.mapBackendError("Dashboard", err)
	}

	return models.FromDomainDashboard(dashboard), nil
}

// UpdateStatus подтверждает или отменяет бронирование
func (s *Service) UpdateStatus(ctx context.Context, token string, bookingID int64, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if !domain.IsManageableStatus(status) {
		s.logger.Warn("UpdateStatus: unsupported status %q for booking id=%d", status, bookingID)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.client.UpdateBookingStatus(ctx, token, bookingID, status); err != nil {
		return s.mapBackendError("UpdateStatus", err)
	}

	s.logger.Info("UpdateStatus: booking id=%d set to %s", bookingID, status)
	return nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, token string, bookingID int64) error {
	if err := s.client.DeleteBooking(ctx, token, bookingID); err != nil {
		return s.mapBackendError("Delete", err)
	}

	s.logger.Info("Delete: booking id=%d deleted", bookingID)
	return nil
}

func (s *Service) mapBackendError(op string, err error) error {
	switch {
	case errors.Is(err, hotelapi.ErrUnauthorized):
		s.logger.Warn("%s: session rejected by backend", op)
		return ErrUnauthorized
	case errors.Is(err, hotelapi.ErrBookingNotFound):
		return ErrBookingNotFound
	default:
		s.logger.Error("%s: backend error: %v", op, err)
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
}

// LoginMessage возвращает сообщение для формы входа
func LoginMessage(err error) string {
	if errors.Is(err, ErrInvalidCredentials) {
		return MsgInvalidCredentials
	}

	var rejected *hotelapi.LoginRejectedError
	if errors.As(err, &rejected) {
		return rejected.Message()
	}

	var netErr *hotelapi.NetworkError
	if errors.As(err, &netErr) {
		return netErr.Message()
	}

	return MsgLoginFailed
}

// ActionMessage возвращает сообщение для действий над бронированием
func ActionMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidStatus):
		return MsgInvalidStatus
	case errors.Is(err, ErrBookingNotFound):
		return MsgBookingNotFound
	default:
		return MsgActionFailed
	}
}
