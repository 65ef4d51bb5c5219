package middleware

import (
	"ItemKeeper/internal/auth"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "user_id"

// WithAuth разбирает заголовок "Authorization: Token <value>" и кладёт user_id
// в контекст запроса. Отсутствующий или невалидный токен не прерывает цепочку:
// запрос идёт дальше анонимным, отказ (401) — ответственность хендлера.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if value, ok := strings.CutPrefix(header, "Token "); ok {
				claims, err := auth.ParseToken(strings.TrimSpace(value), secret)
				if err == nil {
					ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext возвращает user_id, установленный WithAuth.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
