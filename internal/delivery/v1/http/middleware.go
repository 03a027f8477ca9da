package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
)

// Заголовки, которые выставляет шлюз авторизации.
const (
	headerUserID   = "X-User-ID"
	headerUserType = "X-User-Type"
)

type userCtxKey struct{}

// identity достает пользователя из заголовков шлюза и кладет его в контекст.
func identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(headerUserID))
		userType := domain.UserType(strings.ToLower(strings.TrimSpace(r.Header.Get(headerUserType))))

		if id == "" || (userType != domain.UserTypeCustomer && userType != domain.UserTypeCoach) {
			WriteError(w, e.ErrUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey{}, domain.NewUser(id, userType))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromCtx(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userCtxKey{}).(*domain.User)
	return user
}
