package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	// Причина (email или пароль) наружу не раскрывается.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSession возвращается, когда токен сессии неизвестен или истёк
	ErrInvalidSession = errors.New("invalid session")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
