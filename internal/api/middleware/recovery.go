package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
)

type Logger interface {
	Error(format string, v ...interface{})
}

// Recovery перехватывает панику обработчика и отвечает 500
func Recovery(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rv := recover(); rv != nil {
					if rv == http.ErrAbortHandler {
						panic(rv)
					}
					logger.Error("%s %s - Panic recovered: %v\n%s", r.Method, r.URL.Path, rv, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
