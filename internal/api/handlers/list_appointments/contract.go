package list_appointments

import (
	"github.com/m04kA/PWS-ScheduleService/internal/domain"
	"github.com/m04kA/PWS-ScheduleService/internal/service/schedule"
)

type ScheduleService interface {
	TodayAppointments() []domain.Appointment
	FutureAppointments(page, pageSize int) ([]domain.Appointment, schedule.Page)
	PastAppointments(page, pageSize int) ([]domain.Appointment, schedule.Page)
	CancelledAppointments(page, pageSize int) ([]domain.CancelledAppointment, schedule.Page)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
