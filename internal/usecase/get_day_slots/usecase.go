package get_day_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
)

// UseCase use case получения слотов дня: сетка рабочего дня,
// наложенная на записи документа дня. Слоты без записи свободны.
type UseCase struct {
	scheduleReader ScheduleReader
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reader ScheduleReader, logger Logger) *UseCase {
	return &UseCase{
		scheduleReader: reader,
		logger:         logger,
	}
}

// Execute выполняет use case получения слотов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	settings := uc.scheduleReader.Settings()
	dateKey := domain.FormatDateKey(req.Date)
	day := uc.scheduleReader.DaySlots(dateKey)

	grid := domain.GenerateSlotGrid(settings.StartHour, settings.EndHour, settings.SlotDurationMinutes)
	halfHour := settings.IsHalfHour()

	slots := make([]domain.DaySlot, len(grid))
	for i, gridSlot := range grid {
		slot := domain.DaySlot{
			Code:   gridSlot.Code,
			Label:  gridSlot.Label,
			Status: domain.SlotAvailable,
		}

		if override := domain.ResolveSlotOverride(day, gridSlot.Code, halfHour); override != nil {
			slot.Status = override.Status
			slot.Request = override.Request
		}

		slots[i] = slot
	}

	uc.logger.Info("GetDaySlots: date=%s, duration=%dm, slots=%d", dateKey, settings.SlotDurationMinutes, len(slots))

	return &Response{
		Date:                dateKey,
		SlotDurationMinutes: settings.SlotDurationMinutes,
		Slots:               slots,
	}, nil
}
