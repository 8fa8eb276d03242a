package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger printf-style обёртка над slog, пишет в stdout и, опционально, в файл
type Logger struct {
	base *slog.Logger
	file *os.File
}

// Option настройка логгера
type Option func(*options)

type options struct {
	format    string
	output    io.Writer
	addSource bool
}

// WithFormat задаёт формат вывода: "text" (по умолчанию) или "json"
func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}

// WithOutput заменяет stdout другим writer'ом
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithSource добавляет файл и строку вызова в записи
func WithSource(enabled bool) Option {
	return func(o *options) { o.addSource = enabled }
}

// New создаёт логгер. Пустой file означает вывод только в stdout.
func New(file, level string, opts ...Option) (*Logger, error) {
	o := options{output: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	l := &Logger{}
	writer := o.output
	if file != "" {
		if dir := filepath.Dir(file); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
		writer = io.MultiWriter(o.output, f)
	}

	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(level), AddSource: o.addSource}
	switch strings.ToLower(strings.TrimSpace(o.format)) {
	case "json":
		l.base = slog.New(slog.NewJSONHandler(writer, handlerOpts))
	default:
		l.base = slog.New(slog.NewTextHandler(writer, handlerOpts))
	}

	return l, nil
}

// ParseLevel переводит текстовый уровень в slog.Level, по умолчанию info
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "dbg":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.base.Debug(fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.base.Info(fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.base.Warn(fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.base.Error(fmt.Sprintf(format, v...))
}

// Fatal логирует ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.base.Error(fmt.Sprintf(format, v...))
	_ = l.Close()
	os.Exit(1)
}

// With возвращает логгер с дополнительными атрибутами (request_id и т.п.)
func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{base: l.base.With(args...), file: l.file}
}

// Slog возвращает нижележащий *slog.Logger
func (l *Logger) Slog() *slog.Logger {
	return l.base
}

// Close закрывает файл лога
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
