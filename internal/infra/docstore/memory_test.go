package docstore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_CreateAndGet(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	id, err := store.Create(ctx, "requests", map[string]interface{}{"name": "Анна"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	raw, err := store.Get(ctx, "requests", id)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "Анна", doc["name"])
}

func TestMemory_GetMissing(t *testing.T) {
	store := NewMemory()

	_, err := store.Get(context.Background(), "requests", "ghost")
	assert.ErrorIs(t, err, ErrDocNotFound)
}

func TestMemory_MergePreservesOtherFields(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Merge(ctx, "slots", "2026-09-10", map[string]interface{}{
		"10": map[string]interface{}{"status": "pending"},
		"11": map[string]interface{}{"status": "blocked"},
	}))

	// слияние затрагивает только присланные поля верхнего уровня
	require.NoError(t, store.Merge(ctx, "slots", "2026-09-10", map[string]interface{}{
		"10": map[string]interface{}{"status": "booked"},
	}))

	raw, err := store.Get(ctx, "slots", "2026-09-10")
	require.NoError(t, err)

	var doc map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "booked", doc["10"]["status"])
	assert.Equal(t, "blocked", doc["11"]["status"])
}

func TestMemory_MergeCreatesMissingDoc(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Merge(ctx, "settings", "app", map[string]interface{}{"slotDuration": 30}))

	raw, err := store.Get(ctx, "settings", "app")
	require.NoError(t, err)
	assert.JSONEq(t, `{"slotDuration": 30}`, string(raw))
}

func TestMemory_Subscribe(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, err := store.Create(ctx, "requests", map[string]interface{}{"seq": 1})
	require.NoError(t, err)

	var snapshots []Snapshot
	unsub, err := store.Subscribe(ctx, "requests", func(s Snapshot) {
		snapshots = append(snapshots, s)
	})
	require.NoError(t, err)

	// начальный снимок доставлен синхронно
	require.Len(t, snapshots, 1)
	assert.Len(t, snapshots[0], 1)

	_, err = store.Create(ctx, "requests", map[string]interface{}{"seq": 2})
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Len(t, snapshots[1], 2)

	// запись в другую коллекцию подписку не трогает
	_, err = store.Create(ctx, "appointments", map[string]interface{}{"seq": 3})
	require.NoError(t, err)
	assert.Len(t, snapshots, 2)

	unsub()
	_, err = store.Create(ctx, "requests", map[string]interface{}{"seq": 4})
	require.NoError(t, err)
	assert.Len(t, snapshots, 2, "после отписки уведомления не приходят")
}

func TestMemory_SubscribeDoc(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	var docs []json.RawMessage
	unsub, err := store.SubscribeDoc(ctx, "settings", "app", func(raw json.RawMessage) {
		docs = append(docs, raw)
	})
	require.NoError(t, err)
	defer unsub()

	// документа ещё нет: начальный снимок nil
	require.Len(t, docs, 1)
	assert.Nil(t, docs[0])

	require.NoError(t, store.Merge(ctx, "settings", "app", map[string]interface{}{"startHour": 9}))
	require.Len(t, docs, 2)
	assert.JSONEq(t, `{"startHour": 9}`, string(docs[1]))

	require.NoError(t, store.Delete(ctx, "settings", "app"))
	require.Len(t, docs, 3)
	assert.Nil(t, docs[2], "после удаления подписчик видит nil")
}

func TestMemory_DeleteMissingIsNoError(t *testing.T) {
	store := NewMemory()
	assert.NoError(t, store.Delete(context.Background(), "requests", "ghost"))
}
