package approve_request

import "context"

type ScheduleService interface {
	ApproveRequest(ctx context.Context, requestID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
