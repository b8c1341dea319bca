package domain

import "time"

// FormatDateKey форматирует дату в dateKey вида YYYY-MM-DD.
// Часовой пояс не конвертируется: dateKey -- это локальная календарная дата.
// Фиксированная ширина и ведущие нули делают ключи лексикографически
// сравнимыми, на этом держится разбиение записей на сегодня/будущее/прошлое.
func FormatDateKey(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDateKey разбирает dateKey обратно в дату (полночь, локальное время)
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, key, time.Local)
}
