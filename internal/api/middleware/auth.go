package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

// userIDHeader заголовок с ID аутентифицированного пользователя
// Аутентификацию выполняет gateway, сервис доверяет заголовку
const userIDHeader = "X-User-ID"

type ctxKey int

const userIDKey ctxKey = iota

// Auth middleware извлекает ID пользователя из заголовка X-User-ID
// и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
