package block_slot

import (
	"context"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
)

type ScheduleService interface {
	BlockSlot(ctx context.Context, dateKey string, code domain.SlotCode) error
	UnblockSlot(ctx context.Context, dateKey string, code domain.SlotCode) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
