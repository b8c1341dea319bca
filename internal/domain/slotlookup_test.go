package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSlotOverride_DirectHit(t *testing.T) {
	day := DaySlots{
		"1030": {Status: SlotPending},
	}

	override := ResolveSlotOverride(day, 1030, true)
	require.NotNil(t, override)
	assert.Equal(t, SlotPending, override.Status)
}

func TestResolveSlotOverride_EmptyDay(t *testing.T) {
	assert.Nil(t, ResolveSlotOverride(nil, 10, false))
	assert.Nil(t, ResolveSlotOverride(DaySlots{}, 1030, true))
}

func TestResolveSlotOverride_HalfHourFallsBackToHour(t *testing.T) {
	// запись сделана в эпоху 60-минутных слотов: ключ -- голый номер часа
	day := DaySlots{
		"10": {Status: SlotBooked},
	}

	for _, code := range []SlotCode{1000, 1030} {
		override := ResolveSlotOverride(day, code, true)
		require.NotNil(t, override, "code %d", code)
		assert.Equal(t, SlotBooked, override.Status, "code %d", code)
	}

	assert.Nil(t, ResolveSlotOverride(day, 1100, true))
}

func TestResolveSlotOverride_HourChecksBothHalfSlots(t *testing.T) {
	// записи 30-минутной эпохи: занят только второй полуслот
	day := DaySlots{
		"1000": {Status: SlotAvailable},
		"1030": {Status: SlotPending},
	}

	override := ResolveSlotOverride(day, 10, false)
	require.NotNil(t, override)
	assert.Equal(t, SlotPending, override.Status)
}

func TestResolveSlotOverride_HourFallsBackToAvailableHalfSlot(t *testing.T) {
	day := DaySlots{
		"1000": {Status: SlotAvailable},
	}

	override := ResolveSlotOverride(day, 10, false)
	require.NotNil(t, override)
	assert.Equal(t, SlotAvailable, override.Status)
}

func TestSlotOverride_IsAvailable(t *testing.T) {
	var nilOverride *SlotOverride
	assert.True(t, nilOverride.IsAvailable())
	assert.True(t, (&SlotOverride{Status: SlotAvailable}).IsAvailable())
	assert.False(t, (&SlotOverride{Status: SlotPending}).IsAvailable())
	assert.False(t, (&SlotOverride{Status: SlotBlocked}).IsAvailable())
}
