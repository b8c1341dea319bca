package docstore

import (
	"context"
	"encoding/json"
)

// Snapshot снимок коллекции: id документа -> его содержимое
type Snapshot map[string]json.RawMessage

// Unsubscribe отписывает подписчика от обновлений
type Unsubscribe func()

// Store контракт документного хранилища с живыми подписками.
// Каждая запись независима: никаких транзакций, охватывающих
// несколько документов, хранилище не предоставляет.
type Store interface {
	// Create вставляет документ, идентификатор назначает хранилище
	Create(ctx context.Context, collection string, data interface{}) (string, error)

	// Merge выполняет upsert с слиянием на уровне полей верхнего уровня:
	// отсутствующие в partial поля документа остаются нетронутыми
	Merge(ctx context.Context, collection, id string, partial interface{}) error

	// Delete удаляет документ. Удаление отсутствующего документа не ошибка
	Delete(ctx context.Context, collection, id string) error

	// Get возвращает документ или ErrDocNotFound
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)

	// List возвращает снимок всей коллекции
	List(ctx context.Context, collection string) (Snapshot, error)

	// Subscribe устанавливает живую подписку на коллекцию.
	// Подписчик сразу получает начальный снимок, затем снимок целиком
	// на каждое изменение любого документа коллекции.
	Subscribe(ctx context.Context, collection string, fn func(Snapshot)) (Unsubscribe, error)

	// SubscribeDoc живая подписка на один документ.
	// nil в колбэке означает, что документа нет (ещё или уже).
	SubscribeDoc(ctx context.Context, collection, id string, fn func(json.RawMessage)) (Unsubscribe, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
