package domain

import "fmt"

// GridSlot элемент сетки слотов: код и подпись для отображения
type GridSlot struct {
	Code  SlotCode `json:"slotCode"`
	Label string   `json:"label"`
}

// GenerateSlotGrid генерирует упорядоченную сетку слотов рабочего дня
// [startHour, endHour) с фиксированным шагом slotDurationMinutes.
// Сетка детерминирована и не зависит от бронирований конкретного дня.
//
// При 60-минутных слотах код слота -- номер часа,
// при 30-минутных -- hour*100 и hour*100+30.
// Некорректный диапазон часов отсекается на обновлении настроек,
// здесь он даёт пустую сетку.
func GenerateSlotGrid(startHour, endHour, slotDurationMinutes int) []GridSlot {
	if startHour >= endHour {
		return []GridSlot{}
	}

	slots := make([]GridSlot, 0, (endHour-startHour)*60/slotDurationMinutes)

	if slotDurationMinutes == 30 {
		for hour := startHour; hour < endHour; hour++ {
			slots = append(slots, GridSlot{
				Code:  SlotCode(hour * 100),
				Label: fmt.Sprintf("%02d:00 - %02d:30", hour, hour),
			})
			slots = append(slots, GridSlot{
				Code:  SlotCode(hour*100 + 30),
				Label: fmt.Sprintf("%02d:30 - %02d:00", hour, hour+1),
			})
		}
		return slots
	}

	for hour := startHour; hour < endHour; hour++ {
		slots = append(slots, GridSlot{
			Code:  SlotCode(hour),
			Label: fmt.Sprintf("%02d:00 - %02d:00", hour, hour+1),
		})
	}
	return slots
}
