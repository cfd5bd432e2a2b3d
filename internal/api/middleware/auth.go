package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

// Заголовки, которые выставляет API gateway после аутентификации
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// RoleAdmin роль администратора расписания
const RoleAdmin = "admin"

const (
	msgMissingUserID = "отсутствует идентификатор пользователя"
	msgAdminOnly     = "операция доступна только администратору"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	userRoleKey contextKey = "user_role"
)

// Auth требует X-User-ID и кладет пользователя и роль в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderUserRole))))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только роль admin. Ставится после Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if role, _ := GetUserRole(r.Context()); role != RoleAdmin {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserRole возвращает роль пользователя из контекста
func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleKey).(string)
	return role, ok
}
