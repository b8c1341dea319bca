package create_request

import (
	"context"
	"time"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
)

// ScheduleReader доступ к зеркалам сервиса расписания
type ScheduleReader interface {
	Settings() domain.ScheduleSettings
	DaySlots(dateKey string) domain.DaySlots
	HasPendingRequest(identity string) bool
}

// DocStore операции записи документного хранилища
type DocStore interface {
	Create(ctx context.Context, collection string, data interface{}) (string, error)
	Merge(ctx context.Context, collection, id string, partial interface{}) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
