package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/PWS-ScheduleService/internal/api/handlers"
	authService "github.com/m04kA/PWS-ScheduleService/internal/service/auth"
)

const msgUnauthorized = "требуется действующая админская сессия"

type contextKey string

// adminEmailKey ключ контекста с учётной записью администратора
const adminEmailKey contextKey = "adminEmail"

// SessionValidator проверяет токен сессии
type SessionValidator interface {
	Validate(ctx context.Context, token string) (string, error)
}

// Auth закрывает админский контур: пропускает только запросы
// с действующим Bearer-токеном сессии
func Auth(validator SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			email, err := validator.Validate(r.Context(), token)
			if err != nil {
				if errors.Is(err, authService.ErrInvalidSession) {
					handlers.RespondUnauthorized(w, msgUnauthorized)
					return
				}
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), adminEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminEmail возвращает учётную запись администратора из контекста запроса
func AdminEmail(ctx context.Context) string {
	email, _ := ctx.Value(adminEmailKey).(string)
	return email
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
