package create_request

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
	"github.com/m04kA/PWS-ScheduleService/internal/service/schedule"
)

// UseCase use case создания заявки посетителем.
// Две записи в хранилище (документ заявки и пометка слота) выполняются
// без общей транзакции -- при сбое второй записи остаётся заявка
// с незанятым слотом, что разрешается админом вручную.
type UseCase struct {
	scheduleReader ScheduleReader
	store          DocStore
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reader ScheduleReader, store DocStore, logger Logger) *UseCase {
	return &UseCase{
		scheduleReader: reader,
		store:          store,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRequest: date=%s, slot=%d, email=%s",
		req.Date.Format(domain.DateFormat), req.Slot, req.RequesterEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRequest: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateRequest: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Код слота должен входить в сетку текущих настроек
	settings := uc.scheduleReader.Settings()
	if err := validateSlotInGrid(req.Slot, settings); err != nil {
		uc.logger.Warn("CreateRequest: slot %d is outside the grid", req.Slot)
		return nil, err
	}

	// 4. У идентичности не должно быть другой ожидающей заявки.
	// Идентичность -- email, а при указанном телефоне ещё и телефон:
	// одна ожидающая заявка на человека во всей системе.
	phone := strings.TrimSpace(req.RequesterPhone)
	if uc.scheduleReader.HasPendingRequest(req.RequesterEmail) ||
		(phone != "" && uc.scheduleReader.HasPendingRequest(phone)) {
		uc.logger.Warn("CreateRequest: identity %s already has a pending request", req.RequesterEmail)
		return nil, ErrDuplicatePendingRequest
	}

	// 5. Слот должен быть свободен (с учётом записей, сделанных
	// при другой длительности слота)
	dateKey := domain.FormatDateKey(req.Date)
	override := domain.ResolveSlotOverride(uc.scheduleReader.DaySlots(dateKey), req.Slot, settings.IsHalfHour())
	if !override.IsAvailable() {
		uc.logger.Warn("CreateRequest: slot %s/%d is not available", dateKey, req.Slot)
		return nil, ErrSlotNotAvailable
	}

	// 6. Создаем документ заявки
	request := domain.Request{
		Date:           dateKey,
		Slot:           req.Slot,
		RequesterName:  strings.TrimSpace(req.RequesterName),
		RequesterEmail: strings.TrimSpace(req.RequesterEmail),
		RequesterPhone: phone,
		Description:    strings.TrimSpace(req.Description),
		Status:         domain.RequestStatusPending,
		CreatedAt:      now,
	}

	id, err := uc.store.Create(ctx, schedule.CollectionRequests, request)
	if err != nil {
		uc.logger.Error("CreateRequest: failed to create request doc: %v", err)
		return nil, fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}

	// 7. Помечаем слот как ожидающий с денормализованной копией заявки
	slotCopy := request
	slotCopy.ID = id
	if err := uc.store.Merge(ctx, schedule.CollectionSlots, dateKey, domain.DaySlots{
		req.Slot.String(): {Status: domain.SlotPending, Request: &slotCopy},
	}); err != nil {
		uc.logger.Error("CreateRequest: failed to mark slot %s/%d pending: %v", dateKey, req.Slot, err)
		return nil, fmt.Errorf("%w: update slot: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateRequest: request id=%s created for slot %s/%d", id, dateKey, req.Slot)

	return &Response{
		ID:             id,
		Date:           dateKey,
		Slot:           int(req.Slot),
		RequesterName:  request.RequesterName,
		RequesterEmail: request.RequesterEmail,
		RequesterPhone: request.RequesterPhone,
		Description:    request.Description,
		Status:         request.Status,
		CreatedAt:      request.CreatedAt,
	}, nil
}
