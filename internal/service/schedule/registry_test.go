package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
)

func putRequest(svc *Service, id string, createdAt time.Time) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.requests[id] = domain.Request{
		ID:             id,
		Date:           "2026-09-10",
		Slot:           14,
		RequesterEmail: id + "@example.com",
		Status:         domain.RequestStatusPending,
		CreatedAt:      createdAt,
	}
}

func putAppointment(svc *Service, id, date string, slot domain.SlotCode) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.appointments[id] = domain.Appointment{
		Request: domain.Request{
			ID:     id,
			Date:   date,
			Slot:   slot,
			Status: domain.AppointmentStatusApproved,
		},
		ApprovedAt: testNow,
	}
}

func TestPendingRequests_FIFO(t *testing.T) {
	svc, _ := newTestService(t)

	putRequest(svc, "late", testNow.Add(-time.Minute))
	putRequest(svc, "early", testNow.Add(-time.Hour))
	putRequest(svc, "middle", testNow.Add(-30*time.Minute))

	requests, meta := svc.PendingRequests(1, 10)
	require.Len(t, requests, 3)
	assert.Equal(t, "early", requests[0].ID)
	assert.Equal(t, "middle", requests[1].ID)
	assert.Equal(t, "late", requests[2].ID)
	assert.Equal(t, 3, meta.TotalItems)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestPendingRequests_Pagination(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 0; i < 25; i++ {
		putRequest(svc, fmt.Sprintf("req-%02d", i), testNow.Add(time.Duration(i)*time.Minute))
	}

	requests, meta := svc.PendingRequests(3, 10)
	assert.Len(t, requests, 5)
	assert.Equal(t, 3, meta.Page)
	assert.Equal(t, 25, meta.TotalItems)
	assert.Equal(t, 3, meta.TotalPages)

	// страница за пределами списка -- пустой срез, не ошибка
	requests, meta = svc.PendingRequests(4, 10)
	assert.Empty(t, requests)
	assert.Equal(t, 3, meta.TotalPages)

	// нулевая страница трактуется как первая
	requests, _ = svc.PendingRequests(0, 10)
	require.Len(t, requests, 10)
	assert.Equal(t, "req-00", requests[0].ID)
}

func TestAppointmentBuckets(t *testing.T) {
	svc, _ := newTestService(t)

	// testNow -- 2026-09-01
	putAppointment(svc, "yesterday", "2026-08-31", 12)
	putAppointment(svc, "today-late", "2026-09-01", 18)
	putAppointment(svc, "today-early", "2026-09-01", 11)
	putAppointment(svc, "tomorrow", "2026-09-02", 10)
	putAppointment(svc, "next-week", "2026-09-08", 15)
	putAppointment(svc, "last-month", "2026-08-05", 16)

	today := svc.TodayAppointments()
	require.Len(t, today, 2)
	assert.Equal(t, "today-early", today[0].ID)
	assert.Equal(t, "today-late", today[1].ID)

	future, meta := svc.FutureAppointments(1, 10)
	require.Len(t, future, 2)
	assert.Equal(t, "tomorrow", future[0].ID)
	assert.Equal(t, "next-week", future[1].ID)
	assert.Equal(t, 2, meta.TotalItems)

	past, _ := svc.PastAppointments(1, 10)
	require.Len(t, past, 2)
	assert.Equal(t, "yesterday", past[0].ID, "прошедшие записи отдаются свежими вперёд")
	assert.Equal(t, "last-month", past[1].ID)
}

func TestCancelledAppointments_Order(t *testing.T) {
	svc, _ := newTestService(t)

	svc.mu.Lock()
	svc.cancelled["old"] = domain.CancelledAppointment{
		Appointment: domain.Appointment{Request: domain.Request{ID: "old"}},
		CancelledAt: testNow.Add(-48 * time.Hour),
	}
	svc.cancelled["fresh"] = domain.CancelledAppointment{
		Appointment: domain.Appointment{Request: domain.Request{ID: "fresh"}},
		CancelledAt: testNow.Add(-time.Hour),
	}
	svc.mu.Unlock()

	cancelled, meta := svc.CancelledAppointments(1, 10)
	require.Len(t, cancelled, 2)
	assert.Equal(t, "fresh", cancelled[0].ID)
	assert.Equal(t, "old", cancelled[1].ID)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestHasPendingRequest(t *testing.T) {
	svc, store := newTestService(t)
	seedRequest(t, store, "2026-09-10", 14)

	assert.True(t, svc.HasPendingRequest("anna@example.com"))
	assert.True(t, svc.HasPendingRequest("+79990001122"))
	assert.False(t, svc.HasPendingRequest("other@example.com"))
	assert.False(t, svc.HasPendingRequest(""))
}
