package hotelapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m04kA/SorftInn-Web/internal/domain"
)

// Login выполняет вход сотрудника
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/login/", loginRequest{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req, "login")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fields, _ := parseFieldErrors(readErrorBody(resp))
		return nil, &LoginRejectedError{Status: resp.StatusCode, Fields: fields}
	}

	var login LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return nil, fmt.Errorf("%w: failed to decode login response: %v", ErrInvalidResponse, err)
	}
	if login.Tokens.Access == "" {
		return nil, fmt.Errorf("%w: login response has no access token", ErrInvalidResponse)
	}

	return &login, nil
}

// GetDashboard получает сводку для панели сотрудника
func (c *Client) GetDashboard(ctx context.Context, token string) (*domain.Dashboard, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/bookings/dashboard/", nil, token)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req, "dashboard")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, &StatusError{Endpoint: "dashboard", Status: resp.StatusCode}
	}

	var dashboard apiDashboard
	if err := json.NewDecoder(resp.Body).Decode(&dashboard); err != nil {
		return nil, fmt.Errorf("%w: failed to decode dashboard: %v", ErrInvalidResponse, err)
	}

	return dashboard.toDomain(), nil
}

// UpdateBookingStatus меняет статус бронирования
func (c *Client) UpdateBookingStatus(ctx context.Context, token string, bookingID int64, status string) error {
	req, err := c.newRequest(ctx, http.MethodPatch, manageBookingPath(bookingID), manageBookingRequest{Status: status}, token)
	if err != nil {
		return err
	}

	resp, err := c.do(req, "booking_manage")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return manageStatusError(resp.StatusCode)
}

// DeleteBooking удаляет бронирование
func (c *Client) DeleteBooking(ctx context.Context, token string, bookingID int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, manageBookingPath(bookingID), nil, token)
	if err != nil {
		return err
	}

	resp, err := c.do(req, "booking_manage")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return manageStatusError(resp.StatusCode)
}

func manageBookingPath(bookingID int64) string {
	return fmt.Sprintf("/api/bookings/%d/manage/", bookingID)
}

func manageStatusError(status int) error {
	switch {
	case status >= 200 && status <= 299:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusNotFound:
		return ErrBookingNotFound
	default:
		return &StatusError{Endpoint: "booking_manage", Status: status}
	}
}
