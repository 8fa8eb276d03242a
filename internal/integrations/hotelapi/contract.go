package hotelapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer получает длительность и исход каждого вызова бэкенда (метрики)
type Observer interface {
	ObserveBackendCall(endpoint, outcome string, duration time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveBackendCall(string, string, time.Duration) {}
