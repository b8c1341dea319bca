package schedule

import (
	"sort"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
)

// DefaultPageSize размер страницы админских списков
const DefaultPageSize = 10

// Page метаданные страницы списка. Номера страниц с единицы.
type Page struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// paginate вырезает страницу page (с единицы) из списка.
// Страница за пределами списка даёт пустой срез, не ошибку.
func paginate[T any](items []T, page, pageSize int) ([]T, Page) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	meta := Page{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}

	start := (page - 1) * pageSize
	if start >= total {
		return []T{}, meta
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return items[start:end], meta
}

// PendingRequests возвращает страницу очереди заявок.
// Очередь FIFO: сортировка по времени создания по возрастанию.
func (s *Service) PendingRequests(page, pageSize int) ([]domain.Request, Page) {
	s.mu.RLock()
	requests := make([]domain.Request, 0, len(s.requests))
	for _, req := range s.requests {
		requests = append(requests, req)
	}
	s.mu.RUnlock()

	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.Before(requests[j].CreatedAt)
		}
		return requests[i].ID < requests[j].ID
	})

	return paginate(requests, page, pageSize)
}

// сравнение дат записей -- лексикографическое сравнение dateKey;
// корректно только потому, что формат YYYY-MM-DD фиксированной ширины

// TodayAppointments записи на сегодня, по возрастанию времени слота
func (s *Service) TodayAppointments() []domain.Appointment {
	today := domain.FormatDateKey(s.timeProvider.Now())

	appointments := s.collectAppointments(func(apt domain.Appointment) bool {
		return apt.Date == today
	})

	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].Slot < appointments[j].Slot
	})
	return appointments
}

// FutureAppointments страница будущих записей:
// по возрастанию даты, внутри даты -- по времени слота
func (s *Service) FutureAppointments(page, pageSize int) ([]domain.Appointment, Page) {
	today := domain.FormatDateKey(s.timeProvider.Now())

	appointments := s.collectAppointments(func(apt domain.Appointment) bool {
		return apt.Date > today
	})

	sort.Slice(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].Slot < appointments[j].Slot
	})

	return paginate(appointments, page, pageSize)
}

// PastAppointments страница прошедших записей, самые свежие первыми
func (s *Service) PastAppointments(page, pageSize int) ([]domain.Appointment, Page) {
	today := domain.FormatDateKey(s.timeProvider.Now())

	appointments := s.collectAppointments(func(apt domain.Appointment) bool {
		return apt.Date < today
	})

	sort.Slice(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date > appointments[j].Date
		}
		return appointments[i].Slot > appointments[j].Slot
	})

	return paginate(appointments, page, pageSize)
}

// CancelledAppointments страница отменённых записей,
// последние отменённые первыми
func (s *Service) CancelledAppointments(page, pageSize int) ([]domain.CancelledAppointment, Page) {
	s.mu.RLock()
	cancelled := make([]domain.CancelledAppointment, 0, len(s.cancelled))
	for _, c := range s.cancelled {
		cancelled = append(cancelled, c)
	}
	s.mu.RUnlock()

	sort.Slice(cancelled, func(i, j int) bool {
		if !cancelled[i].CancelledAt.Equal(cancelled[j].CancelledAt) {
			return cancelled[i].CancelledAt.After(cancelled[j].CancelledAt)
		}
		return cancelled[i].ID < cancelled[j].ID
	})

	return paginate(cancelled, page, pageSize)
}

func (s *Service) collectAppointments(keep func(domain.Appointment) bool) []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appointments := make([]domain.Appointment, 0, len(s.appointments))
	for _, apt := range s.appointments {
		if keep(apt) {
			appointments = append(appointments, apt)
		}
	}
	return appointments
}
