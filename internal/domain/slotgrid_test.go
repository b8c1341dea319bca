package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotGrid_HourSlots(t *testing.T) {
	grid := GenerateSlotGrid(10, 21, 60)

	require.Len(t, grid, 11)
	assert.Equal(t, SlotCode(10), grid[0].Code)
	assert.Equal(t, "10:00 - 11:00", grid[0].Label)
	assert.Equal(t, SlotCode(20), grid[10].Code)
	assert.Equal(t, "20:00 - 21:00", grid[10].Label)

	// коды строго возрастают
	for i := 1; i < len(grid); i++ {
		assert.Greater(t, grid[i].Code, grid[i-1].Code)
	}
}

func TestGenerateSlotGrid_HalfHourSlots(t *testing.T) {
	grid := GenerateSlotGrid(10, 12, 30)

	require.Len(t, grid, 4)
	assert.Equal(t, SlotCode(1000), grid[0].Code)
	assert.Equal(t, "10:00 - 10:30", grid[0].Label)
	assert.Equal(t, SlotCode(1030), grid[1].Code)
	assert.Equal(t, "10:30 - 11:00", grid[1].Label)
	assert.Equal(t, SlotCode(1100), grid[2].Code)
	assert.Equal(t, SlotCode(1130), grid[3].Code)
	assert.Equal(t, "11:30 - 12:00", grid[3].Label)
}

func TestGenerateSlotGrid_EmptyRange(t *testing.T) {
	assert.Empty(t, GenerateSlotGrid(21, 10, 60))
	assert.Empty(t, GenerateSlotGrid(10, 10, 30))
}

func TestGenerateSlotGrid_MatchesSlotsPerDay(t *testing.T) {
	settings := ScheduleSettings{SlotDurationMinutes: 30, StartHour: 9, EndHour: 18}
	grid := GenerateSlotGrid(settings.StartHour, settings.EndHour, settings.SlotDurationMinutes)
	assert.Len(t, grid, settings.SlotsPerDay())
}
