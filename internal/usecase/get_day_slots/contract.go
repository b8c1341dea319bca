package get_day_slots

import (
	"github.com/m04kA/PWS-ScheduleService/internal/domain"
)

// ScheduleReader доступ к зеркалам сервиса расписания
type ScheduleReader interface {
	Settings() domain.ScheduleSettings
	DaySlots(dateKey string) domain.DaySlots
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
