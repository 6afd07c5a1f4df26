package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader заголовок с идентификатором запроса
const requestIDHeader = "X-Request-ID"

const requestIDKey ctxKey = iota + 100

// RequestID middleware присваивает каждому запросу идентификатор
// Идентификатор из входящего заголовка переиспользуется (сквозная трассировка
// через gateway), иначе генерируется новый
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID)))
	})
}

// GetRequestID возвращает идентификатор запроса из контекста
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}
