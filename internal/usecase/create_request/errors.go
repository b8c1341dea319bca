package create_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("invalid request date")

	// ErrInvalidSlot возвращается, когда код слота не входит
	// в сетку при текущих настройках
	ErrInvalidSlot = errors.New("slot is not in the working-hours grid")

	// ErrSlotNotAvailable возвращается, когда слот уже занят или заблокирован
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrDuplicatePendingRequest возвращается, когда у заявителя
	// уже есть ожидающая заявка (в любом дне, на любой слот)
	ErrDuplicatePendingRequest = errors.New("requester already has a pending request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
