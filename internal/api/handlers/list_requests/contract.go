package list_requests

import (
	"github.com/m04kA/PWS-ScheduleService/internal/domain"
	"github.com/m04kA/PWS-ScheduleService/internal/service/schedule"
)

type ScheduleService interface {
	PendingRequests(page, pageSize int) ([]domain.Request, schedule.Page)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
