package httpx

import (
	"net/http"
	"time"
)

// Delay holds every request for d before handing it to the next handler.
// Only the current request waits; a client that goes away stops the wait.
// A non-positive d disables the middleware.
func Delay(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timer := time.NewTimer(d)
			defer timer.Stop()

			select {
			case <-timer.C:
				next.ServeHTTP(w, r)
			case <-r.Context().Done():
			}
		})
	}
}
