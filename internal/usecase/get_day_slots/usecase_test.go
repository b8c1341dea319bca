package get_day_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
)

type stubReader struct {
	settings domain.ScheduleSettings
	day      domain.DaySlots
}

func (s *stubReader) Settings() domain.ScheduleSettings { return s.settings }

func (s *stubReader) DaySlots(dateKey string) domain.DaySlots { return s.day }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_FullGridDefaultsToAvailable(t *testing.T) {
	uc := NewUseCase(&stubReader{settings: domain.DefaultSettings()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-10", resp.Date)
	assert.Equal(t, 60, resp.SlotDurationMinutes)
	require.Len(t, resp.Slots, 11)

	for _, slot := range resp.Slots {
		assert.Equal(t, domain.SlotAvailable, slot.Status)
		assert.Nil(t, slot.Request)
	}
}

func TestExecute_OverridesApplied(t *testing.T) {
	req := &domain.Request{ID: "req-1", RequesterName: "Анна"}
	reader := &stubReader{
		settings: domain.DefaultSettings(),
		day: domain.DaySlots{
			"12": {Status: domain.SlotPending, Request: req},
			"15": {Status: domain.SlotBlocked},
		},
	}
	uc := NewUseCase(reader, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	byCode := make(map[domain.SlotCode]domain.DaySlot, len(resp.Slots))
	for _, slot := range resp.Slots {
		byCode[slot.Code] = slot
	}

	assert.Equal(t, domain.SlotPending, byCode[12].Status)
	require.NotNil(t, byCode[12].Request)
	assert.Equal(t, "req-1", byCode[12].Request.ID)

	assert.Equal(t, domain.SlotBlocked, byCode[15].Status)
	assert.Equal(t, domain.SlotAvailable, byCode[10].Status)
}

func TestExecute_LegacyHourBookingCoversBothHalfSlots(t *testing.T) {
	// запись под ключом часа видна обоим полуслотам после смены шага на 30 минут
	settings := domain.ScheduleSettings{SlotDurationMinutes: 30, StartHour: 10, EndHour: 12}
	reader := &stubReader{
		settings: settings,
		day: domain.DaySlots{
			"10": {Status: domain.SlotBooked},
		},
	}
	uc := NewUseCase(reader, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	assert.Equal(t, domain.SlotBooked, resp.Slots[0].Status) // 1000
	assert.Equal(t, domain.SlotBooked, resp.Slots[1].Status) // 1030
	assert.Equal(t, domain.SlotAvailable, resp.Slots[2].Status)
	assert.Equal(t, domain.SlotAvailable, resp.Slots[3].Status)
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := NewUseCase(&stubReader{settings: domain.DefaultSettings()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
