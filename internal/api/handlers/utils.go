package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

const msgInternalError = "internal server error"

// ErrorResponse модель JSON ошибки
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PageRenderer рендерер html страниц
type PageRenderer interface {
	Render(w http.ResponseWriter, status int, page, title string, data interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ErrorPage данные страницы ошибки
type ErrorPage struct {
	Message string
	BackURL string
}

// RespondJSON пишет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError пишет JSON ошибку
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondBadGateway(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadGateway, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RenderPage рендерит страницу; при ошибке шаблона отдаёт простой 500
func RenderPage(w http.ResponseWriter, renderer PageRenderer, logger Logger, status int, page, title string, data interface{}) {
	if err := renderer.Render(w, status, page, title, data); err != nil {
		logger.Error("Failed to render page %s: %v", page, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// RenderError рендерит страницу ошибки с сообщением для пользователя
func RenderError(w http.ResponseWriter, renderer PageRenderer, logger Logger, status int, title, message, backURL string) {
	RenderPage(w, renderer, logger, status, "error", title, ErrorPage{Message: message, BackURL: backURL})
}

// Redirect перенаправляет на target с кодом 303 (Post/Redirect/Get)
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// ParseIDVar извлекает положительный int64 из переменной пути
func ParseIDVar(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", name, raw)
	}
	return id, nil
}
