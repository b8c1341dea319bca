package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Memory реализация Store в памяти процесса. Используется в тестах
// и при локальной разработке без PostgreSQL. Уведомления подписчикам
// доставляются синхронно в горутине писателя, что делает тесты
// детерминированными.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}

	nextSub  int64
	collSubs map[string]map[int64]func(Snapshot)
	docSubs  map[string]map[int64]func(json.RawMessage)
}

var _ Store = (*Memory)(nil)

// NewMemory создает пустое хранилище в памяти
func NewMemory() *Memory {
	return &Memory{
		collections: make(map[string]map[string]map[string]interface{}),
		collSubs:    make(map[string]map[int64]func(Snapshot)),
		docSubs:     make(map[string]map[int64]func(json.RawMessage)),
	}
}

// toFields переводит произвольный документ в map полей через JSON
func toFields(data interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshal, err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: document must be a JSON object: %v", ErrMarshal, err)
	}
	return fields, nil
}

// Create вставляет документ со сгенерированным идентификатором
func (m *Memory) Create(ctx context.Context, collection string, data interface{}) (string, error) {
	fields, err := toFields(data)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()

	m.mu.Lock()
	if m.collections[collection] == nil {
		m.collections[collection] = make(map[string]map[string]interface{})
	}
	m.collections[collection][id] = fields
	m.mu.Unlock()

	m.notify(collection, id)
	return id, nil
}

// Merge выполняет upsert со слиянием полей верхнего уровня
func (m *Memory) Merge(ctx context.Context, collection, id string, partial interface{}) error {
	fields, err := toFields(partial)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.collections[collection] == nil {
		m.collections[collection] = make(map[string]map[string]interface{})
	}
	doc := m.collections[collection][id]
	if doc == nil {
		doc = make(map[string]interface{})
		m.collections[collection][id] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}
	m.mu.Unlock()

	m.notify(collection, id)
	return nil
}

// Delete удаляет документ; отсутствие документа не считается ошибкой
func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	if docs := m.collections[collection]; docs != nil {
		delete(docs, id)
	}
	m.mu.Unlock()

	m.notify(collection, id)
	return nil
}

// Get возвращает документ или ErrDocNotFound
func (m *Memory) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	m.mu.RLock()
	doc, ok := m.collections[collection][id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrDocNotFound
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshal, err)
	}
	return raw, nil
}

// List возвращает снимок всей коллекции
func (m *Memory) List(ctx context.Context, collection string) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked(collection)
}

func (m *Memory) snapshotLocked(collection string) (Snapshot, error) {
	snapshot := make(Snapshot, len(m.collections[collection]))
	for id, doc := range m.collections[collection] {
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMarshal, err)
		}
		snapshot[id] = raw
	}
	return snapshot, nil
}

// Subscribe устанавливает живую подписку на коллекцию
func (m *Memory) Subscribe(ctx context.Context, collection string, fn func(Snapshot)) (Unsubscribe, error) {
	m.mu.Lock()
	m.nextSub++
	token := m.nextSub
	if m.collSubs[collection] == nil {
		m.collSubs[collection] = make(map[int64]func(Snapshot))
	}
	m.collSubs[collection][token] = fn
	initial, err := m.snapshotLocked(collection)
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}
	fn(initial)

	return func() {
		m.mu.Lock()
		delete(m.collSubs[collection], token)
		m.mu.Unlock()
	}, nil
}

// SubscribeDoc живая подписка на один документ
func (m *Memory) SubscribeDoc(ctx context.Context, collection, id string, fn func(json.RawMessage)) (Unsubscribe, error) {
	key := docKey(collection, id)

	m.mu.Lock()
	m.nextSub++
	token := m.nextSub
	if m.docSubs[key] == nil {
		m.docSubs[key] = make(map[int64]func(json.RawMessage))
	}
	m.docSubs[key][token] = fn
	m.mu.Unlock()

	initial, err := m.Get(ctx, collection, id)
	if err != nil && err != ErrDocNotFound {
		return nil, err
	}
	fn(initial)

	return func() {
		m.mu.Lock()
		delete(m.docSubs[key], token)
		m.mu.Unlock()
	}, nil
}

// notify синхронно доставляет снимки всем подписчикам
func (m *Memory) notify(collection, id string) {
	m.mu.RLock()
	collFns := make([]func(Snapshot), 0, len(m.collSubs[collection]))
	for _, fn := range m.collSubs[collection] {
		collFns = append(collFns, fn)
	}
	docFns := make([]func(json.RawMessage), 0, len(m.docSubs[docKey(collection, id)]))
	for _, fn := range m.docSubs[docKey(collection, id)] {
		docFns = append(docFns, fn)
	}
	snapshot, snapErr := m.snapshotLocked(collection)
	doc := m.collections[collection][id]
	m.mu.RUnlock()

	if snapErr != nil {
		return
	}

	for _, fn := range collFns {
		fn(snapshot)
	}

	var raw json.RawMessage
	if doc != nil {
		raw, _ = json.Marshal(doc)
	}
	for _, fn := range docFns {
		fn(raw)
	}
}
