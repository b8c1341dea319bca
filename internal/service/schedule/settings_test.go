package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
)

func TestUpdateAllSettings(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.UpdateAllSettings(context.Background(), 30, 9, 18))

	// зеркало обновляется через подписку на документ настроек
	settings := svc.Settings()
	assert.Equal(t, 30, settings.SlotDurationMinutes)
	assert.Equal(t, 9, settings.StartHour)
	assert.Equal(t, 18, settings.EndHour)
}

func TestUpdateAllSettings_InvalidDuration(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.UpdateAllSettings(context.Background(), 45, 10, 21)
	assert.ErrorIs(t, err, ErrInvalidSlotDuration)

	// в хранилище ничего не ушло, действуют настройки по умолчанию
	assert.Equal(t, domain.DefaultSettings(), svc.Settings())
}

func TestUpdateAllSettings_InvalidWorkingHours(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name       string
		start, end int
	}{
		{"start after end", 18, 10},
		{"start equals end", 10, 10},
		{"negative start", -1, 10},
		{"end past midnight", 10, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateAllSettings(context.Background(), 60, tt.start, tt.end)
			assert.ErrorIs(t, err, ErrInvalidWorkingHours)
		})
	}

	assert.Equal(t, domain.DefaultSettings(), svc.Settings())
}
