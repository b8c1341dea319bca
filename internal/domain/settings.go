package domain

// ScheduleSettings настройки расписания, общие для всего сервиса.
// Хранятся одним документом settings/app и меняются только админом.
type ScheduleSettings struct {
	SlotDurationMinutes int `json:"slotDuration"`
	StartHour           int `json:"startHour"`
	EndHour             int `json:"endHour"` // исключающая верхняя граница
}

// DefaultSettings возвращает настройки, действующие до первого
// сохранения документа settings/app
func DefaultSettings() ScheduleSettings {
	return ScheduleSettings{
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		StartHour:           DefaultStartHour,
		EndHour:             DefaultEndHour,
	}
}

// IsHalfHour returns true if the schedule runs on 30-minute slots
func (s ScheduleSettings) IsHalfHour() bool {
	return s.SlotDurationMinutes == 30
}

// SlotsPerDay количество слотов в рабочем дне при текущих настройках
func (s ScheduleSettings) SlotsPerDay() int {
	hours := s.EndHour - s.StartHour
	if hours <= 0 {
		return 0
	}
	return hours * 60 / s.SlotDurationMinutes
}
