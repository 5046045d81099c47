package middleware

import (
	"net/http"

	"slot_backend/internal/monitoring"
)

// RequestMetrics инкрементирует счётчик HTTP-запросов
func RequestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		monitoring.HTTPRequests.WithLabelValues(r.Method, r.URL.Path).Inc()
		next.ServeHTTP(w, r)
	})
}
