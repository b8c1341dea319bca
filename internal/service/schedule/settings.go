package schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
)

// UpdateAllSettings обновляет все настройки расписания одной слитой записью.
// Невалидные настройки -- это видимая ошибка валидации, а не тихий no-op:
// в хранилище в таком случае не уходит ничего.
func (s *Service) UpdateAllSettings(ctx context.Context, slotDurationMinutes, startHour, endHour int) error {
	if !domain.IsAllowedSlotDuration(slotDurationMinutes) {
		s.logger.Warn("UpdateAllSettings: rejected slot duration %d", slotDurationMinutes)
		return ErrInvalidSlotDuration
	}
	if startHour < domain.MinHour || endHour > domain.MaxHour || startHour >= endHour {
		s.logger.Warn("UpdateAllSettings: rejected working hours %d-%d", startHour, endHour)
		return ErrInvalidWorkingHours
	}

	settings := domain.ScheduleSettings{
		SlotDurationMinutes: slotDurationMinutes,
		StartHour:           startHour,
		EndHour:             endHour,
	}

	if err := s.store.Merge(ctx, CollectionSettings, SettingsDocID, settings); err != nil {
		s.logger.Error("UpdateAllSettings: failed to persist settings: %v", err)
		return fmt.Errorf("%w: persist settings: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAllSettings: duration=%dm, hours=%02d:00-%02d:00",
		slotDurationMinutes, startHour, endHour)
	return nil
}
