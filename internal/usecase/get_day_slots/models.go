package get_day_slots

import (
	"time"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
)

// Request модель запроса слотов дня
type Request struct {
	Date time.Time // дата без времени
}

// Response слоты дня: полная сетка рабочего дня, дополненная
// статусами из документа дня
type Response struct {
	Date                string           `json:"date"`
	SlotDurationMinutes int              `json:"slotDurationMinutes"`
	Slots               []domain.DaySlot `json:"slots"`
}
