package create_request

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные заявки
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RequesterName) == "" {
		return fmt.Errorf("%w: requester name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.RequesterEmail) == "" {
		return fmt.Errorf("%w: requester email is required", ErrInvalidInput)
	}
	if !strings.Contains(req.RequesterEmail, "@") {
		return fmt.Errorf("%w: requester email is malformed", ErrInvalidInput)
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateSlotInGrid проверяет, что код слота входит в сетку
// рабочего дня при текущих настройках
func validateSlotInGrid(code domain.SlotCode, settings domain.ScheduleSettings) error {
	grid := domain.GenerateSlotGrid(settings.StartHour, settings.EndHour, settings.SlotDurationMinutes)
	for _, slot := range grid {
		if slot.Code == code {
			return nil
		}
	}
	return ErrInvalidSlot
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
