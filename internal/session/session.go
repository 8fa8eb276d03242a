package session

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSession возвращается, когда cookie сессии отсутствует или истекла
var ErrNoSession = errors.New("session: no valid session")

// Session сессия сотрудника: access token бэкенда и срок его действия
type Session struct {
	AccessToken string
	Subject     string
	ExpiresAt   time.Time
}

// Expired сессия истекла к моменту now
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// FromToken строит сессию из access token.
// Подпись не проверяется (её проверяет бэкенд), читаются только exp и sub.
// Без exp срок равен issuedAt + ttl.
func FromToken(token string, issuedAt time.Time, ttl time.Duration) Session {
	s := Session{AccessToken: token, ExpiresAt: issuedAt.Add(ttl)}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return s
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	if sub, err := claims.GetSubject(); err == nil {
		s.Subject = sub
	}
	return s
}

// Manager читает и пишет cookie сессии
type Manager struct {
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
}

// NewManager создаёт менеджер сессий
func NewManager(cookieName string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
		now:        time.Now,
	}
}

// Start выставляет cookie с токеном и возвращает сессию
func (m *Manager) Start(w http.ResponseWriter, token string) Session {
	s := FromToken(token, m.now(), m.ttl)
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return s
}

// Load читает сессию из запроса. Истёкшая сессия возвращает ErrNoSession.
func (m *Manager) Load(r *http.Request) (Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return Session{}, ErrNoSession
	}

	// Cookie не хранит время выдачи, поэтому токен без exp живёт до истечения самой cookie
	s := FromToken(cookie.Value, m.now(), m.ttl)
	if s.Expired(m.now()) {
		return Session{}, ErrNoSession
	}
	return s, nil
}

// Clear удаляет cookie сессии
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

type contextKey struct{}

// WithSession кладёт сессию в контекст запроса
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext достаёт сессию из контекста
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}
