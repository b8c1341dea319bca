package schedule

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m04kA/PWS-ScheduleService/internal/infra/docstore"
)

// DocStore интерфейс документного хранилища, используемый сервисом
type DocStore interface {
	Create(ctx context.Context, collection string, data interface{}) (string, error)
	Merge(ctx context.Context, collection, id string, partial interface{}) error
	Delete(ctx context.Context, collection, id string) error
	Subscribe(ctx context.Context, collection string, fn func(docstore.Snapshot)) (docstore.Unsubscribe, error)
	SubscribeDoc(ctx context.Context, collection, id string, fn func(json.RawMessage)) (docstore.Unsubscribe, error)
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
