package auth

import "context"

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Create(ctx context.Context, email string) (string, error)
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
