package domain

import "strconv"

// SlotStatus represents the status of a single time slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotPending   SlotStatus = "pending"
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
)

// SlotCode кодирует время начала слота внутри дня.
// При 60-минутных слотах это номер часа (0-23),
// при 30-минутных -- hour*100 + minute, где minute принимает значения 0 или 30.
type SlotCode int

// String возвращает ключ слота в том виде, в котором он хранится
// в документе дня (JSON-ключи всегда строковые)
func (c SlotCode) String() string {
	return strconv.Itoa(int(c))
}

// ParseSlotCode разбирает строковый ключ слота из документа дня
func ParseSlotCode(s string) (SlotCode, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return SlotCode(n), nil
}

// SlotOverride запись о слоте в документе дня.
// Отсутствие записи означает, что слот свободен.
// Инвариант: Request заполнен тогда и только тогда,
// когда статус pending или booked.
type SlotOverride struct {
	Status  SlotStatus `json:"status"`
	Request *Request   `json:"request"`
}

// IsAvailable returns true if the slot can accept a new request
func (o *SlotOverride) IsAvailable() bool {
	return o == nil || o.Status == SlotAvailable
}

// DaySlots документ коллекции slots: ключ -- SlotCode в строковом виде
type DaySlots map[string]SlotOverride

// DaySlot один слот дня, отдаваемый наружу: шаблон сетки,
// дополненный статусом из документа дня
type DaySlot struct {
	Code    SlotCode   `json:"slotCode"`
	Label   string     `json:"label"`
	Status  SlotStatus `json:"status"`
	Request *Request   `json:"request,omitempty"`
}
