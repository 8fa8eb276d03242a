package middleware

import (
	"net/http"

	"github.com/m04kA/SorftInn-Web/internal/session"
)

// LoginPath страница входа для неавторизованных запросов
const LoginPath = "/auth"

// Auth пропускает запрос только при действующей сессии сотрудника.
// Сессия кладётся в контекст, иначе выполняется редирект на страницу входа.
func Auth(sessions SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := sessions.Load(r)
			if err != nil {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
		})
	}
}
