package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
	"github.com/m04kA/PWS-ScheduleService/internal/infra/docstore"
)

func TestStart_PopulatesMirrorsFromInitialSnapshots(t *testing.T) {
	store := docstore.NewMemory()
	ctx := context.Background()

	// данные существуют до запуска сервиса
	_, err := store.Create(ctx, CollectionRequests, domain.Request{
		Date:           "2026-09-10",
		Slot:           14,
		RequesterEmail: "anna@example.com",
		Status:         domain.RequestStatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, store.Merge(ctx, CollectionSettings, SettingsDocID, domain.ScheduleSettings{
		SlotDurationMinutes: 30,
		StartHour:           9,
		EndHour:             18,
	}))

	svc := NewService(store, nopLogger{})
	require.NoError(t, svc.Start(ctx))
	defer svc.Close()

	assert.True(t, svc.HasPendingRequest("anna@example.com"))
	assert.Equal(t, 30, svc.Settings().SlotDurationMinutes)
}

func TestMirror_IgnoresNonPendingRequests(t *testing.T) {
	svc, store := newTestService(t)

	_, err := store.Create(context.Background(), CollectionRequests, domain.Request{
		Date:           "2026-09-10",
		Slot:           14,
		RequesterEmail: "stale@example.com",
		Status:         domain.AppointmentStatusApproved,
	})
	require.NoError(t, err)

	assert.False(t, svc.HasPendingRequest("stale@example.com"))
	requests, _ := svc.PendingRequests(1, 10)
	assert.Empty(t, requests)
}

func TestDaySlots_ReturnsCopy(t *testing.T) {
	svc, store := newTestService(t)
	seedRequest(t, store, "2026-09-10", 14)

	day := svc.DaySlots("2026-09-10")
	require.NotNil(t, day)

	day["14"] = domain.SlotOverride{Status: domain.SlotBlocked}

	fresh := svc.DaySlots("2026-09-10")
	assert.Equal(t, domain.SlotPending, fresh["14"].Status, "мутация копии не трогает зеркало")
}

func TestDaySlots_UnknownDay(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Nil(t, svc.DaySlots("2030-01-01"))
}
