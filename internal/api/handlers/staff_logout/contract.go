package staff_logout

import "net/http"

type SessionManager interface {
	Clear(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
}
