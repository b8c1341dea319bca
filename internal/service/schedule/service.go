package schedule

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
	"github.com/m04kA/PWS-ScheduleService/internal/infra/docstore"
)

// Имена коллекций документного хранилища
const (
	CollectionSlots        = "slots"
	CollectionRequests     = "requests"
	CollectionAppointments = "appointments"
	CollectionCancelled    = "cancelled"
	CollectionSettings     = "settings"

	// SettingsDocID единственный документ настроек
	SettingsDocID = "app"
)

// Service держит живые зеркала всех коллекций расписания и выполняет
// переходы жизненного цикла слотов. Зеркала -- read-through кэши:
// хозяин данных всегда хранилище, каждое зеркало обновляется пушем
// подписки, локально данные никогда не мутируются.
//
// Модель согласованности: last-writer-wins, без версионирования и
// блокировок. Два админа, одновременно одобряющие одну заявку, оба
// получат успех -- для модерируемого вручную расписания это принятый
// компромисс, а не дефект.
type Service struct {
	store        DocStore
	logger       Logger
	timeProvider TimeProvider

	mu           sync.RWMutex
	slots        map[string]domain.DaySlots // dateKey -> слоты дня
	requests     map[string]domain.Request
	appointments map[string]domain.Appointment
	cancelled    map[string]domain.CancelledAppointment
	settings     domain.ScheduleSettings

	unsubs []docstore.Unsubscribe
}

// NewService создает сервис расписания. До вызова Start зеркала пусты.
func NewService(store DocStore, logger Logger) *Service {
	return &Service{
		store:        store,
		logger:       logger,
		timeProvider: &RealTimeProvider{},
		slots:        make(map[string]domain.DaySlots),
		requests:     make(map[string]domain.Request),
		appointments: make(map[string]domain.Appointment),
		cancelled:    make(map[string]domain.CancelledAppointment),
		settings:     domain.DefaultSettings(),
	}
}

// Start устанавливает подписки на все коллекции. Начальные снимки
// доставляются синхронно, так что после возврата зеркала заполнены.
func (s *Service) Start(ctx context.Context) error {
	subscriptions := []struct {
		collection string
		fn         func(docstore.Snapshot)
	}{
		{CollectionSlots, s.onSlots},
		{CollectionRequests, s.onRequests},
		{CollectionAppointments, s.onAppointments},
		{CollectionCancelled, s.onCancelled},
	}

	for _, sub := range subscriptions {
		unsub, err := s.store.Subscribe(ctx, sub.collection, sub.fn)
		if err != nil {
			s.Close()
			return err
		}
		s.unsubs = append(s.unsubs, unsub)
	}

	unsub, err := s.store.SubscribeDoc(ctx, CollectionSettings, SettingsDocID, s.onSettings)
	if err != nil {
		s.Close()
		return err
	}
	s.unsubs = append(s.unsubs, unsub)

	s.logger.Info("schedule: subscriptions established")
	return nil
}

// Close снимает все подписки
func (s *Service) Close() {
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
}

func (s *Service) onSlots(snapshot docstore.Snapshot) {
	slots := make(map[string]domain.DaySlots, len(snapshot))
	for dateKey, raw := range snapshot {
		var day domain.DaySlots
		if err := json.Unmarshal(raw, &day); err != nil {
			s.logger.Error("schedule: skip malformed slots doc %s: %v", dateKey, err)
			continue
		}
		slots[dateKey] = day
	}

	s.mu.Lock()
	s.slots = slots
	s.mu.Unlock()
}

func (s *Service) onRequests(snapshot docstore.Snapshot) {
	requests := make(map[string]domain.Request, len(snapshot))
	for id, raw := range snapshot {
		var req domain.Request
		if err := json.Unmarshal(raw, &req); err != nil {
			s.logger.Error("schedule: skip malformed request doc %s: %v", id, err)
			continue
		}
		// в зеркале держим только ожидающие рассмотрения заявки
		if req.Status != domain.RequestStatusPending {
			continue
		}
		req.ID = id
		requests[id] = req
	}

	s.mu.Lock()
	s.requests = requests
	s.mu.Unlock()
}

func (s *Service) onAppointments(snapshot docstore.Snapshot) {
	appointments := make(map[string]domain.Appointment, len(snapshot))
	for id, raw := range snapshot {
		var apt domain.Appointment
		if err := json.Unmarshal(raw, &apt); err != nil {
			s.logger.Error("schedule: skip malformed appointment doc %s: %v", id, err)
			continue
		}
		apt.ID = id
		appointments[id] = apt
	}

	s.mu.Lock()
	s.appointments = appointments
	s.mu.Unlock()
}

func (s *Service) onCancelled(snapshot docstore.Snapshot) {
	cancelled := make(map[string]domain.CancelledAppointment, len(snapshot))
	for id, raw := range snapshot {
		var c domain.CancelledAppointment
		if err := json.Unmarshal(raw, &c); err != nil {
			s.logger.Error("schedule: skip malformed cancelled doc %s: %v", id, err)
			continue
		}
		c.ID = id
		cancelled[id] = c
	}

	s.mu.Lock()
	s.cancelled = cancelled
	s.mu.Unlock()
}

func (s *Service) onSettings(raw json.RawMessage) {
	if raw == nil {
		return
	}

	settings := domain.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.logger.Error("schedule: skip malformed settings doc: %v", err)
		return
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
}

// Settings возвращает текущие настройки расписания
func (s *Service) Settings() domain.ScheduleSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// DaySlots возвращает записи о слотах указанного дня из зеркала
func (s *Service) DaySlots(dateKey string) domain.DaySlots {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day, ok := s.slots[dateKey]
	if !ok {
		return nil
	}
	copied := make(domain.DaySlots, len(day))
	for k, v := range day {
		copied[k] = v
	}
	return copied
}

// HasPendingRequest проверяет, есть ли у идентичности (email или телефон)
// хоть одна ожидающая заявка -- в любом дне, на любой слот
func (s *Service) HasPendingRequest(identity string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, req := range s.requests {
		if req.MatchesIdentity(identity) {
			return true
		}
	}
	return false
}
