package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда токен неизвестен или истёк
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrStorage возвращается при ошибках работы с Redis
	ErrStorage = errors.New("sessions: storage error")
)
