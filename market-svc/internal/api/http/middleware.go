package httpapi

import (
	"log"
	"net/http"
	"time"

	"venue-market/market-svc/internal/metrics"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id (reusing the caller's if present)
// and logs it once the handler returns.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		rec := metrics.NewStatusRecorder(w)
		next.ServeHTTP(rec, r)

		log.Printf("[market-svc] %s %s %d %s request_id=%s",
			r.Method, r.URL.Path, rec.Status, time.Since(start).Round(time.Microsecond), requestID)
	})
}
