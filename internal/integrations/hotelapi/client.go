package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxErrorBody ограничение на чтение тела ответа с ошибкой
const maxErrorBody = 64 << 10

// Метки исхода вызова бэкенда
const (
	OutcomeOK           = "ok"
	OutcomeClientError  = "status_4xx"
	OutcomeServerError  = "status_5xx"
	OutcomeNetworkError = "network_error"
)

// Client клиент для работы с API отеля
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	observer   Observer
}

// NewClient создает новый экземпляр клиента API отеля.
// observer может быть nil.
func NewClient(baseURL string, timeout time.Duration, log Logger, observer Observer) *Client {
	if observer == nil {
		observer = noopObserver{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:      log,
		observer: observer,
	}
}

// newRequest собирает запрос с JSON телом и, при наличии, bearer токеном
func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}, token string) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// do выполняет запрос и записывает метрику вызова.
// Ошибка транспорта возвращается как *NetworkError.
func (c *Client) do(req *http.Request, endpoint string) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observer.ObserveBackendCall(endpoint, OutcomeNetworkError, time.Since(start))
		return nil, &NetworkError{Kind: classifyNetworkError(err), Err: err}
	}

	outcome := OutcomeOK
	switch {
	case resp.StatusCode >= 500:
		outcome = OutcomeServerError
	case resp.StatusCode >= 400:
		outcome = OutcomeClientError
	}
	c.observer.ObserveBackendCall(endpoint, outcome, time.Since(start))

	return resp, nil
}

// classifyNetworkError определяет класс ошибки транспорта
func classifyNetworkError(err error) NetworkErrorKind {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return NetworkTimeout
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return NetworkConnectivity
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"):
		return NetworkTimeout
	case strings.Contains(msg, "connection") || strings.Contains(msg, "network"):
		return NetworkConnectivity
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && errors.Is(urlErr.Err, io.EOF) {
		return NetworkConnectivity
	}

	return NetworkUnexpected
}

func readErrorBody(resp *http.Response) []byte {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return body
}
