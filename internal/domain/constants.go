package domain

// Значения настроек расписания по умолчанию
// Используются, пока документ settings/app ещё не создан админом
const (
	DefaultSlotDurationMinutes = 60
	DefaultStartHour           = 10
	DefaultEndHour             = 21
)

// Бизнес-ограничения
const (
	MinHour              = 0
	MaxHour              = 24
	MaxDescriptionLength = 500
	MaxCancelNoteLength  = 500
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllowedSlotDurations допустимые длительности слота в минутах
var AllowedSlotDurations = []int{30, 60}

// IsAllowedSlotDuration проверяет, что длительность слота поддерживается
func IsAllowedSlotDuration(minutes int) bool {
	for _, d := range AllowedSlotDurations {
		if d == minutes {
			return true
		}
	}
	return false
}
