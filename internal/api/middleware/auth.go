package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type contextKey string

const userContextKey contextKey = "user"

// Auth извлекает пользователя из заголовков X-User-ID и X-User-Role.
// Аутентификация выполняется шлюзом; без роли пользователь считается клиентом
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if rawID == "" {
			handlers.RespondFailure(w, domain.ErrSessionExpired)
			return
		}

		userID, err := uuid.Parse(rawID)
		if err != nil || userID == uuid.Nil {
			handlers.RespondFailure(w, domain.ErrSessionExpired)
			return
		}

		role := domain.RoleCustomer
		if rawRole := strings.TrimSpace(r.Header.Get(HeaderUserRole)); rawRole != "" {
			role = domain.Role(strings.ToLower(rawRole))
		}
		if !role.IsValid() {
			handlers.RespondFailure(w, domain.ErrForbidden)
			return
		}

		ctx := WithUser(r.Context(), &domain.User{ID: userID, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithUser кладет пользователя в контекст
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUser возвращает пользователя, сохраненного Auth
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok && user != nil
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	user, ok := GetUser(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return user.ID, true
}
