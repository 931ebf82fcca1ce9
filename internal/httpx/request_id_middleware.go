package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware tags every request with a UUID, echoed back in the
// response header. Inbound IDs are kept only when they parse as a UUID, so
// log lines can't be polluted by arbitrary client strings.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, requestID)
		r = r.WithContext(ContextWithRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}
