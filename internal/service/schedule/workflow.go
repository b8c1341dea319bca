package schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
	"github.com/m04kA/PWS-ScheduleService/pkg/ptr"
)

// Переходы жизненного цикла слота. Каждая операция -- несколько
// независимых записей в хранилище без общей транзакции и без отката:
// при частичном сбое система остаётся в промежуточном состоянии,
// которое разруливает админ вручную (поведение исходной системы,
// сохранено намеренно).

// ApproveRequest переводит заявку в подтверждённую запись:
// создаёт документ в appointments, удаляет заявку и помечает слот booked
func (s *Service) ApproveRequest(ctx context.Context, requestID string) error {
	s.mu.RLock()
	req, ok := s.requests[requestID]
	s.mu.RUnlock()
	if !ok {
		s.logger.Warn("ApproveRequest: request id=%s not found", requestID)
		return ErrRequestNotFound
	}

	approved := req
	approved.ID = ""
	approved.Status = domain.AppointmentStatusApproved

	appointment := domain.Appointment{
		Request:    approved,
		ApprovedAt: s.timeProvider.Now(),
	}

	if _, err := s.store.Create(ctx, CollectionAppointments, appointment); err != nil {
		s.logger.Error("ApproveRequest: failed to create appointment for request id=%s: %v", requestID, err)
		return fmt.Errorf("%w: create appointment: %v", ErrInternal, err)
	}

	if err := s.store.Delete(ctx, CollectionRequests, requestID); err != nil {
		s.logger.Error("ApproveRequest: failed to delete request id=%s: %v", requestID, err)
		return fmt.Errorf("%w: delete request: %v", ErrInternal, err)
	}

	if err := s.store.Merge(ctx, CollectionSlots, req.Date, domain.DaySlots{
		req.Slot.String(): {Status: domain.SlotBooked, Request: ptr.Ptr(approved)},
	}); err != nil {
		s.logger.Error("ApproveRequest: failed to mark slot %s/%s booked: %v", req.Date, req.Slot, err)
		return fmt.Errorf("%w: update slot: %v", ErrInternal, err)
	}

	s.logger.Info("ApproveRequest: request id=%s approved, slot %s/%s booked", requestID, req.Date, req.Slot)
	return nil
}

// RejectRequest удаляет заявку и возвращает слот в available
func (s *Service) RejectRequest(ctx context.Context, requestID string) error {
	s.mu.RLock()
	req, ok := s.requests[requestID]
	s.mu.RUnlock()
	if !ok {
		s.logger.Warn("RejectRequest: request id=%s not found", requestID)
		return ErrRequestNotFound
	}

	if err := s.store.Delete(ctx, CollectionRequests, requestID); err != nil {
		s.logger.Error("RejectRequest: failed to delete request id=%s: %v", requestID, err)
		return fmt.Errorf("%w: delete request: %v", ErrInternal, err)
	}

	if err := s.store.Merge(ctx, CollectionSlots, req.Date, domain.DaySlots{
		req.Slot.String(): {Status: domain.SlotAvailable, Request: nil},
	}); err != nil {
		s.logger.Error("RejectRequest: failed to release slot %s/%s: %v", req.Date, req.Slot, err)
		return fmt.Errorf("%w: update slot: %v", ErrInternal, err)
	}

	s.logger.Info("RejectRequest: request id=%s rejected, slot %s/%s released", requestID, req.Date, req.Slot)
	return nil
}

// CancelAppointment отменяет подтверждённую запись: копирует её
// в терминальную коллекцию cancelled с обязательной причиной,
// удаляет из appointments и освобождает слот
func (s *Service) CancelAppointment(ctx context.Context, appointmentID, cancelNote string) error {
	cancelNote = strings.TrimSpace(cancelNote)
	if cancelNote == "" {
		return ErrCancelNoteRequired
	}
	if len(cancelNote) > domain.MaxCancelNoteLength {
		return ErrCancelNoteTooLong
	}

	s.mu.RLock()
	apt, ok := s.appointments[appointmentID]
	s.mu.RUnlock()
	if !ok {
		s.logger.Warn("CancelAppointment: appointment id=%s not found", appointmentID)
		return ErrAppointmentNotFound
	}

	record := domain.CancelledAppointment{
		Appointment: apt,
		CancelNote:  cancelNote,
		CancelledAt: s.timeProvider.Now(),
	}
	record.ID = ""
	record.Status = domain.AppointmentStatusCancelled

	if _, err := s.store.Create(ctx, CollectionCancelled, record); err != nil {
		s.logger.Error("CancelAppointment: failed to create cancelled record for id=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: create cancelled record: %v", ErrInternal, err)
	}

	if err := s.store.Delete(ctx, CollectionAppointments, appointmentID); err != nil {
		s.logger.Error("CancelAppointment: failed to delete appointment id=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: delete appointment: %v", ErrInternal, err)
	}

	if err := s.store.Merge(ctx, CollectionSlots, apt.Date, domain.DaySlots{
		apt.Slot.String(): {Status: domain.SlotAvailable, Request: nil},
	}); err != nil {
		s.logger.Error("CancelAppointment: failed to release slot %s/%s: %v", apt.Date, apt.Slot, err)
		return fmt.Errorf("%w: update slot: %v", ErrInternal, err)
	}

	s.logger.Info("CancelAppointment: appointment id=%s cancelled, slot %s/%s released", appointmentID, apt.Date, apt.Slot)
	return nil
}

// BlockSlot закрывает свободный слот административной блокировкой.
// Слот с заявкой или записью заблокировать нельзя; повторная блокировка
// уже заблокированного слота -- идемпотентный успех.
func (s *Service) BlockSlot(ctx context.Context, dateKey string, code domain.SlotCode) error {
	if err := s.ensureToggleable(dateKey, code); err != nil {
		return err
	}

	if err := s.store.Merge(ctx, CollectionSlots, dateKey, domain.DaySlots{
		code.String(): {Status: domain.SlotBlocked, Request: nil},
	}); err != nil {
		s.logger.Error("BlockSlot: failed to block slot %s/%s: %v", dateKey, code, err)
		return fmt.Errorf("%w: update slot: %v", ErrInternal, err)
	}

	s.logger.Info("BlockSlot: slot %s/%s blocked", dateKey, code)
	return nil
}

// UnblockSlot снимает административную блокировку.
// Разблокировка свободного слота -- идемпотентный успех.
func (s *Service) UnblockSlot(ctx context.Context, dateKey string, code domain.SlotCode) error {
	if err := s.ensureToggleable(dateKey, code); err != nil {
		return err
	}

	if err := s.store.Merge(ctx, CollectionSlots, dateKey, domain.DaySlots{
		code.String(): {Status: domain.SlotAvailable, Request: nil},
	}); err != nil {
		s.logger.Error("UnblockSlot: failed to unblock slot %s/%s: %v", dateKey, code, err)
		return fmt.Errorf("%w: update slot: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockSlot: slot %s/%s unblocked", dateKey, code)
	return nil
}

// ensureToggleable проверяет, что по слоту нет заявки или записи.
// Статус берётся с учётом записей, сделанных при другой длительности слота.
func (s *Service) ensureToggleable(dateKey string, code domain.SlotCode) error {
	s.mu.RLock()
	day := s.slots[dateKey]
	halfHour := s.settings.IsHalfHour()
	s.mu.RUnlock()

	override := domain.ResolveSlotOverride(day, code, halfHour)
	if override != nil && (override.Status == domain.SlotPending || override.Status == domain.SlotBooked) {
		return ErrSlotOccupied
	}
	return nil
}
