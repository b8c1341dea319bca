package domain

// ResolveSlotOverride ищет запись о слоте в документе дня с учётом того,
// что записи могли быть сделаны при другой длительности слота.
//
// Прямое попадание по ключу всегда в приоритете. Дальше два направления:
//   - текущий шаг 30 минут (halfHour=true): записи 60-минутной эпохи
//     лежат под голым номером часа, берём его;
//   - текущий шаг 60 минут: записи 30-минутной эпохи лежат под
//     hour*100 и hour*100+30. Час считается занятым, если занят хотя бы
//     один полуслот; точный статус полуслотов не восстанавливается.
//
// Асимметрия осознанная: она не даёт молча потерять брони при смене
// длительности, и ровно это поведение закреплено тестами.
func ResolveSlotOverride(day DaySlots, code SlotCode, halfHour bool) *SlotOverride {
	if len(day) == 0 {
		return nil
	}

	if o, ok := day[code.String()]; ok {
		return &o
	}

	if halfHour {
		base := SlotCode(int(code) / 100)
		if o, ok := day[base.String()]; ok {
			return &o
		}
		return nil
	}

	first := SlotCode(int(code) * 100)
	second := first + 30

	var fallback *SlotOverride
	for _, sub := range []SlotCode{first, second} {
		if o, ok := day[sub.String()]; ok {
			if o.Status != SlotAvailable {
				return &o
			}
			if fallback == nil {
				fallback = &o
			}
		}
	}
	return fallback
}
