package update_settings

import "context"

type ScheduleService interface {
	UpdateAllSettings(ctx context.Context, slotDurationMinutes, startHour, endHour int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
