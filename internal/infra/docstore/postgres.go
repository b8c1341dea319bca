package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PWS-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/PWS-ScheduleService/pkg/metrics"
	"github.com/m04kA/PWS-ScheduleService/pkg/psqlbuilder"
)

// documentsTable единая таблица документов: (collection, id) -> jsonb
const documentsTable = "documents"

// Postgres реализация Store поверх PostgreSQL.
// Документы лежат в jsonb, слияние полей делает оператор ||,
// а живые подписки работают через LISTEN/NOTIFY (см. listener.go):
// триггер на таблице documents шлёт уведомление о каждой записи,
// в том числе сделанной другим экземпляром сервиса.
type Postgres struct {
	db      dbmetrics.DBExecutor
	dsn     string
	logger  Logger
	metrics *metrics.Metrics // может быть nil, если метрики выключены

	mu       sync.RWMutex
	nextSub  int64
	collSubs map[string]map[int64]func(Snapshot)
	docSubs  map[string]map[int64]func(json.RawMessage) // ключ "collection/id"

	listener *listener
}

var _ Store = (*Postgres)(nil)

// NewPostgres создает документное хранилище поверх PostgreSQL.
// dsn нужен отдельно от db: pq.Listener держит собственное соединение.
func NewPostgres(db dbmetrics.DBExecutor, dsn string, m *metrics.Metrics, log Logger) *Postgres {
	return &Postgres{
		db:       db,
		dsn:      dsn,
		logger:   log,
		metrics:  m,
		collSubs: make(map[string]map[int64]func(Snapshot)),
		docSubs:  make(map[string]map[int64]func(json.RawMessage)),
	}
}

// Create вставляет документ, идентификатор генерирует база
func (p *Postgres) Create(ctx context.Context, collection string, data interface{}) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("%w: Create - marshal document: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Insert(documentsTable).
		Columns("collection", "id", "data").
		Values(collection, squirrel.Expr("gen_random_uuid()::text"), raw).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id string
	if err := p.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return "", fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

// Merge выполняет upsert со слиянием полей верхнего уровня
func (p *Postgres) Merge(ctx context.Context, collection, id string, partial interface{}) error {
	raw, err := json.Marshal(partial)
	if err != nil {
		return fmt.Errorf("%w: Merge - marshal partial: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Insert(documentsTable).
		Columns("collection", "id", "data").
		Values(collection, id, raw).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET data = documents.data || EXCLUDED.data, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Merge - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Merge - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет документ; отсутствие документа не считается ошибкой
func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	query, args, err := psqlbuilder.Delete(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// Get возвращает документ или ErrDocNotFound
func (p *Postgres) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	query, args, err := psqlbuilder.Select("data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	if err := p.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocNotFound
		}
		return nil, fmt.Errorf("%w: Get - execute select: %v", ErrExecQuery, err)
	}

	return raw, nil
}

// List возвращает снимок всей коллекции
func (p *Postgres) List(ctx context.Context, collection string) (Snapshot, error) {
	query, args, err := psqlbuilder.Select("id", "data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	snapshot := make(Snapshot)
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		snapshot[id] = raw
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return snapshot, nil
}

// Subscribe устанавливает живую подписку на коллекцию.
// Начальный снимок доставляется синхронно до возврата.
func (p *Postgres) Subscribe(ctx context.Context, collection string, fn func(Snapshot)) (Unsubscribe, error) {
	initial, err := p.List(ctx, collection)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.nextSub++
	token := p.nextSub
	if p.collSubs[collection] == nil {
		p.collSubs[collection] = make(map[int64]func(Snapshot))
	}
	p.collSubs[collection][token] = fn
	p.mu.Unlock()

	fn(initial)

	return func() {
		p.mu.Lock()
		delete(p.collSubs[collection], token)
		p.mu.Unlock()
	}, nil
}

// SubscribeDoc живая подписка на один документ
func (p *Postgres) SubscribeDoc(ctx context.Context, collection, id string, fn func(json.RawMessage)) (Unsubscribe, error) {
	initial, err := p.Get(ctx, collection, id)
	if err != nil && !errors.Is(err, ErrDocNotFound) {
		return nil, err
	}

	key := docKey(collection, id)

	p.mu.Lock()
	p.nextSub++
	token := p.nextSub
	if p.docSubs[key] == nil {
		p.docSubs[key] = make(map[int64]func(json.RawMessage))
	}
	p.docSubs[key][token] = fn
	p.mu.Unlock()

	fn(initial)

	return func() {
		p.mu.Lock()
		delete(p.docSubs[key], token)
		p.mu.Unlock()
	}, nil
}

// dispatch доставляет свежие снимки подписчикам затронутой коллекции
func (p *Postgres) dispatch(ctx context.Context, collection, id string) {
	if p.metrics != nil {
		p.metrics.DocEventsTotal.WithLabelValues(collection).Inc()
	}

	p.mu.RLock()
	collFns := make([]func(Snapshot), 0, len(p.collSubs[collection]))
	for _, fn := range p.collSubs[collection] {
		collFns = append(collFns, fn)
	}
	docFns := make([]func(json.RawMessage), 0, len(p.docSubs[docKey(collection, id)]))
	for _, fn := range p.docSubs[docKey(collection, id)] {
		docFns = append(docFns, fn)
	}
	p.mu.RUnlock()

	if len(collFns) > 0 {
		snapshot, err := p.List(ctx, collection)
		if err != nil {
			p.logger.Error("docstore: dispatch - failed to list collection=%s: %v", collection, err)
			return
		}
		for _, fn := range collFns {
			fn(snapshot)
		}
	}

	if len(docFns) > 0 {
		doc, err := p.Get(ctx, collection, id)
		if err != nil && !errors.Is(err, ErrDocNotFound) {
			p.logger.Error("docstore: dispatch - failed to get doc=%s/%s: %v", collection, id, err)
			return
		}
		for _, fn := range docFns {
			fn(doc)
		}
	}
}

// refreshAll перечитывает все коллекции и документы с подписчиками.
// Вызывается после переподключения слушателя: за время разрыва
// уведомления могли быть потеряны.
func (p *Postgres) refreshAll(ctx context.Context) {
	p.mu.RLock()
	collections := make([]string, 0, len(p.collSubs))
	for collection, subs := range p.collSubs {
		if len(subs) > 0 {
			collections = append(collections, collection)
		}
	}
	docs := make([]string, 0, len(p.docSubs))
	for key, subs := range p.docSubs {
		if len(subs) > 0 {
			docs = append(docs, key)
		}
	}
	p.mu.RUnlock()

	for _, collection := range collections {
		p.dispatch(ctx, collection, "")
	}
	for _, key := range docs {
		collection, id := splitDocKey(key)
		p.dispatch(ctx, collection, id)
	}
}

func docKey(collection, id string) string {
	return collection + "/" + id
}

func splitDocKey(key string) (collection, id string) {
	for i := 0; i < len(key); i++ {
		if key[i] == '/' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}
