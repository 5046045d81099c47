package middleware

import (
	"crypto/subtle"
	"net/http"

	"slot_backend/internal/apperr"
	"slot_backend/internal/config"
	"slot_backend/pkg/resp"
)

// Заголовок со статическим админ-токеном
const AdminTokenHeader = "x-admin-token"

// AdminGuard пропускает запрос только при точном совпадении токена.
// Ненастроенный (пустой) токен закрывает весь админский доступ:
// отказ всегда в сторону запрета, никогда наружу.
func AdminGuard(cfg config.AdminConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			expected := cfg.Token()
			got := r.Header.Get(AdminTokenHeader)

			if expected == "" ||
				subtle.ConstantTimeCompare([]byte(expected), []byte(got)) != 1 {
				resp.WriteError(w, apperr.New(apperr.KindUnauthorized, "admin token required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
