package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/PWS-ScheduleService/internal/infra/sessions"
)

// Service аутентификация администратора. Единственная учётная запись
// задаётся в конфигурации (email + bcrypt-хеш пароля); никакой другой
// авторизационной логики у сервиса нет -- валидная сессия открывает
// весь админский контур целиком.
type Service struct {
	adminEmail        string
	adminPasswordHash string
	sessions          SessionStore
	logger            Logger
}

// NewService создает сервис аутентификации
func NewService(adminEmail, adminPasswordHash string, store SessionStore, logger Logger) *Service {
	return &Service{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		sessions:          store,
		logger:            logger,
	}
}

// SignIn проверяет учётные данные и выпускает токен сессии
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password))

	if !emailOK || passwordErr != nil {
		s.logger.Warn("SignIn: invalid credentials for email=%s", email)
		return "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, email)
	if err != nil {
		s.logger.Error("SignIn: failed to create session: %v", err)
		return "", fmt.Errorf("%w: create session: %v", ErrInternal, err)
	}

	s.logger.Info("SignIn: admin session issued")
	return token, nil
}

// Validate проверяет токен сессии и возвращает email администратора
func (s *Service) Validate(ctx context.Context, token string) (string, error) {
	email, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return "", ErrInvalidSession
		}
		s.logger.Error("Validate: session lookup failed: %v", err)
		return "", fmt.Errorf("%w: session lookup: %v", ErrInternal, err)
	}
	return email, nil
}

// SignOut отзывает токен сессии
func (s *Service) SignOut(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Error("SignOut: failed to delete session: %v", err)
		return fmt.Errorf("%w: delete session: %v", ErrInternal, err)
	}
	s.logger.Info("SignOut: admin session revoked")
	return nil
}
