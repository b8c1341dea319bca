package get_settings

import "github.com/m04kA/PWS-ScheduleService/internal/domain"

type ScheduleService interface {
	Settings() domain.ScheduleSettings
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
