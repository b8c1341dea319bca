package schedule

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
	"github.com/m04kA/PWS-ScheduleService/internal/infra/docstore"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubTime struct {
	now time.Time
}

func (s *stubTime) Now() time.Time { return s.now }

var testNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

// newTestService поднимает сервис поверх хранилища в памяти.
// Уведомления Memory синхронные, поэтому зеркала актуальны сразу
// после каждой записи.
func newTestService(t *testing.T) (*Service, *docstore.Memory) {
	t.Helper()

	store := docstore.NewMemory()
	svc := NewService(store, nopLogger{})
	svc.timeProvider = &stubTime{now: testNow}

	require.NoError(t, svc.Start(context.Background()))
	t.Cleanup(svc.Close)

	return svc, store
}

// seedRequest кладёт в хранилище заявку и помечает её слот
func seedRequest(t *testing.T, store *docstore.Memory, date string, slot domain.SlotCode) string {
	t.Helper()

	req := domain.Request{
		Date:           date,
		Slot:           slot,
		RequesterName:  "Анна Петрова",
		RequesterEmail: "anna@example.com",
		RequesterPhone: "+79990001122",
		Status:         domain.RequestStatusPending,
		CreatedAt:      testNow.Add(-time.Hour),
	}

	id, err := store.Create(context.Background(), CollectionRequests, req)
	require.NoError(t, err)

	req.ID = id
	require.NoError(t, store.Merge(context.Background(), CollectionSlots, date, domain.DaySlots{
		slot.String(): {Status: domain.SlotPending, Request: &req},
	}))

	return id
}

// seedAppointment кладёт в хранилище подтверждённую запись
func seedAppointment(t *testing.T, store *docstore.Memory, date string, slot domain.SlotCode) string {
	t.Helper()

	apt := domain.Appointment{
		Request: domain.Request{
			Date:           date,
			Slot:           slot,
			RequesterName:  "Анна Петрова",
			RequesterEmail: "anna@example.com",
			Status:         domain.AppointmentStatusApproved,
			CreatedAt:      testNow.Add(-2 * time.Hour),
		},
		ApprovedAt: testNow.Add(-time.Hour),
	}

	id, err := store.Create(context.Background(), CollectionAppointments, apt)
	require.NoError(t, err)

	aptCopy := apt.Request
	aptCopy.ID = id
	require.NoError(t, store.Merge(context.Background(), CollectionSlots, date, domain.DaySlots{
		slot.String(): {Status: domain.SlotBooked, Request: &aptCopy},
	}))

	return id
}

func TestApproveRequest(t *testing.T) {
	svc, store := newTestService(t)
	id := seedRequest(t, store, "2026-09-10", 14)

	require.NoError(t, svc.ApproveRequest(context.Background(), id))

	// заявка исчезла из очереди
	requests, _ := svc.PendingRequests(1, 10)
	assert.Empty(t, requests)

	// появилась подтверждённая запись
	appointments, _ := svc.FutureAppointments(1, 10)
	require.Len(t, appointments, 1)
	assert.Equal(t, domain.AppointmentStatusApproved, appointments[0].Status)
	assert.Equal(t, "2026-09-10", appointments[0].Date)
	assert.True(t, appointments[0].ApprovedAt.Equal(testNow))

	// слот помечен booked
	day := svc.DaySlots("2026-09-10")
	override, ok := day["14"]
	require.True(t, ok)
	assert.Equal(t, domain.SlotBooked, override.Status)
	require.NotNil(t, override.Request)
	assert.Equal(t, "anna@example.com", override.Request.RequesterEmail)
}

func TestApproveRequest_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.ApproveRequest(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRejectRequest(t *testing.T) {
	svc, store := newTestService(t)
	id := seedRequest(t, store, "2026-09-10", 14)

	require.NoError(t, svc.RejectRequest(context.Background(), id))

	requests, _ := svc.PendingRequests(1, 10)
	assert.Empty(t, requests)

	appointments, _ := svc.FutureAppointments(1, 10)
	assert.Empty(t, appointments, "отклонение не создаёт запись")

	day := svc.DaySlots("2026-09-10")
	override, ok := day["14"]
	require.True(t, ok)
	assert.Equal(t, domain.SlotAvailable, override.Status)
	assert.Nil(t, override.Request)
}

func TestCancelAppointment(t *testing.T) {
	svc, store := newTestService(t)
	id := seedAppointment(t, store, "2026-09-10", 14)

	require.NoError(t, svc.CancelAppointment(context.Background(), id, "  перенос по просьбе гостя  "))

	appointments, _ := svc.FutureAppointments(1, 10)
	assert.Empty(t, appointments)

	cancelled, _ := svc.CancelledAppointments(1, 10)
	require.Len(t, cancelled, 1)
	assert.Equal(t, domain.AppointmentStatusCancelled, cancelled[0].Status)
	assert.Equal(t, "перенос по просьбе гостя", cancelled[0].CancelNote)
	assert.True(t, cancelled[0].CancelledAt.Equal(testNow))

	day := svc.DaySlots("2026-09-10")
	override, ok := day["14"]
	require.True(t, ok)
	assert.Equal(t, domain.SlotAvailable, override.Status)
}

func TestCancelAppointment_NoteValidation(t *testing.T) {
	svc, store := newTestService(t)
	id := seedAppointment(t, store, "2026-09-10", 14)

	err := svc.CancelAppointment(context.Background(), id, "   ")
	assert.ErrorIs(t, err, ErrCancelNoteRequired)

	err = svc.CancelAppointment(context.Background(), id, strings.Repeat("x", domain.MaxCancelNoteLength+1))
	assert.ErrorIs(t, err, ErrCancelNoteTooLong)

	// запись осталась нетронутой
	appointments, _ := svc.FutureAppointments(1, 10)
	assert.Len(t, appointments, 1)
}

func TestCancelAppointment_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.CancelAppointment(context.Background(), "ghost", "причина")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestBlockSlot(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.BlockSlot(context.Background(), "2026-09-10", 14))

	day := svc.DaySlots("2026-09-10")
	override, ok := day["14"]
	require.True(t, ok)
	assert.Equal(t, domain.SlotBlocked, override.Status)

	// повторная блокировка -- идемпотентный успех
	require.NoError(t, svc.BlockSlot(context.Background(), "2026-09-10", 14))
}

func TestBlockSlot_OccupiedByRequest(t *testing.T) {
	svc, store := newTestService(t)
	seedRequest(t, store, "2026-09-10", 14)

	err := svc.BlockSlot(context.Background(), "2026-09-10", 14)
	assert.ErrorIs(t, err, ErrSlotOccupied)
}

func TestBlockSlot_OccupiedByLegacyHalfSlot(t *testing.T) {
	// бронь 30-минутной эпохи не даёт заблокировать час при 60-минутном шаге
	svc, store := newTestService(t)
	seedAppointment(t, store, "2026-09-10", 1430)

	err := svc.BlockSlot(context.Background(), "2026-09-10", 14)
	assert.ErrorIs(t, err, ErrSlotOccupied)
}

func TestUnblockSlot(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.BlockSlot(context.Background(), "2026-09-10", 14))
	require.NoError(t, svc.UnblockSlot(context.Background(), "2026-09-10", 14))

	day := svc.DaySlots("2026-09-10")
	override, ok := day["14"]
	require.True(t, ok)
	assert.Equal(t, domain.SlotAvailable, override.Status)

	// разблокировка свободного слота -- идемпотентный успех
	require.NoError(t, svc.UnblockSlot(context.Background(), "2026-09-11", 15))
}
