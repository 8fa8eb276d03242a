package middleware

import (
	"net/http"
	"time"

	"github.com/m04kA/SorftInn-Web/internal/session"
)

// HTTPMetrics собирает метрики входящих запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// SessionLoader читает сессию сотрудника из запроса
type SessionLoader interface {
	Load(r *http.Request) (session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
