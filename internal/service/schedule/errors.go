package schedule

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("request not found")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrSlotOccupied возвращается при попытке заблокировать или
	// разблокировать слот с заявкой или подтверждённой записью
	ErrSlotOccupied = errors.New("slot has a pending request or booking")

	// ErrCancelNoteRequired возвращается при отмене записи без причины
	ErrCancelNoteRequired = errors.New("cancellation note is required")

	// ErrCancelNoteTooLong возвращается при слишком длинной причине отмены
	ErrCancelNoteTooLong = errors.New("cancellation note is too long")

	// ErrInvalidSlotDuration возвращается при недопустимой длительности слота
	ErrInvalidSlotDuration = errors.New("slot duration must be 30 or 60 minutes")

	// ErrInvalidWorkingHours возвращается при некорректном диапазоне рабочих часов
	ErrInvalidWorkingHours = errors.New("invalid working hours range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
