package middleware

import (
	"context"
	"net/http"
)

// Заголовок, в котором клиент передаёт capability-токен сессии
const SessionIDHeader = "x-session-id"

type ctxKey string

const sessionIDKey ctxKey = "session_id"

// WithSessionID кладёт идентификатор сессии из заголовка в контекст запроса.
// Сам идентификатор здесь не проверяется — неизвестную сессию отклонит сервис.
func WithSessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := r.Header.Get(SessionIDHeader)
		ctx := context.WithValue(r.Context(), sessionIDKey, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionIDFromContext достаёт идентификатор сессии из контекста
func SessionIDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(sessionIDKey).(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}
