package cancel_appointment

import "context"

type ScheduleService interface {
	CancelAppointment(ctx context.Context, appointmentID, cancelNote string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
