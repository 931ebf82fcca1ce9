package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware converts handler panics into 500 responses. The JSON
// body is only written when the handler had not started responding yet.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			log.Printf("panic recovered: request_id=%s error=%v stack=%s", RequestIDFrom(r), p, debug.Stack())

			if rw, ok := w.(*responseWriter); ok && rw.wroteHeader() {
				return
			}
			JSONError(w, http.StatusInternalServerError, "Internal Server Error", nil)
		}()
		next.ServeHTTP(w, r)
	})
}
