package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotUserID int64
	var gotOK bool

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("валидный заголовок", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
		req.Header.Set("X-User-ID", "42")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotOK)
		assert.Equal(t, int64(42), gotUserID)
	})

	t.Run("отсутствует заголовок", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("нечисловой заголовок", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
		req.Header.Set("X-User-ID", "not-a-number")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("неположительный ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
		req.Header.Set("X-User-ID", "0")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
