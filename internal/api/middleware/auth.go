// Package middleware - HTTP middleware: авторизация администратора и метрики.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/Studio-ReservationService/internal/api/handlers"
)

// HeaderAdminID заголовок с идентификатором администратора
const HeaderAdminID = "X-Admin-ID"

const (
	msgMissingAdminID = "отсутствует заголовок X-Admin-ID"
	msgInvalidAdminID = "некорректный заголовок X-Admin-ID"
)

type contextKey string

const adminIDKey contextKey = "adminID"

// Auth требует валидный заголовок X-Admin-ID и кладет его значение в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderAdminID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingAdminID)
			return
		}

		adminID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || adminID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidAdminID)
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminIDFromContext возвращает идентификатор администратора из контекста
func AdminIDFromContext(ctx context.Context) (int64, bool) {
	adminID, ok := ctx.Value(adminIDKey).(int64)
	return adminID, ok
}

// OptionalAdminID возвращает идентификатор администратора из заголовка,
// если он передан и валиден. Для публичных ручек с необязательной авторизацией
func OptionalAdminID(r *http.Request) *int64 {
	raw := r.Header.Get(HeaderAdminID)
	if raw == "" {
		return nil
	}

	adminID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || adminID <= 0 {
		return nil
	}

	return &adminID
}
