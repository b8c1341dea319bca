package docstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// notifyChannel канал NOTIFY, в который пишет триггер на таблице documents
// (см. migrations/001_init.sql)
const notifyChannel = "document_changes"

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// changePayload тело уведомления из триггера
type changePayload struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
}

// listener обёртка над pq.Listener, раздающая уведомления подписчикам
type listener struct {
	pq   *pq.Listener
	done chan struct{}
}

// Start запускает слушателя уведомлений. До вызова Start записи в
// хранилище проходят, но подписчики не получают обновлений.
func (p *Postgres) Start(ctx context.Context) error {
	if p.listener != nil {
		return ErrListenerStarted
	}

	pl := pq.NewListener(p.dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				p.logger.Warn("docstore: listener event=%d: %v", event, err)
			}
		})

	if err := pl.Listen(notifyChannel); err != nil {
		_ = pl.Close()
		return err
	}

	p.listener = &listener{pq: pl, done: make(chan struct{})}
	go p.listenLoop(ctx)

	p.logger.Info("docstore: listening on channel %q", notifyChannel)
	return nil
}

// Close останавливает слушателя
func (p *Postgres) Close() {
	if p.listener == nil {
		return
	}
	close(p.listener.done)
	_ = p.listener.pq.Close()
}

func (p *Postgres) listenLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.listener.done:
			return

		case n := <-p.listener.pq.Notify:
			// nil приходит после переподключения: часть уведомлений
			// могла потеряться, перечитываем всё
			if n == nil {
				p.logger.Warn("docstore: listener reconnected, refreshing all subscriptions")
				p.refreshAll(ctx)
				continue
			}

			var payload changePayload
			if err := json.Unmarshal([]byte(n.Extra), &payload); err != nil {
				p.logger.Error("docstore: invalid notify payload %q: %v", n.Extra, err)
				continue
			}
			p.dispatch(ctx, payload.Collection, payload.ID)

		case <-time.After(pingInterval):
			go func() {
				if err := p.listener.pq.Ping(); err != nil {
					p.logger.Warn("docstore: listener ping failed: %v", err)
				}
			}()
		}
	}
}
