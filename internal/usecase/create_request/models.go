package create_request

import (
	"time"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
)

// Request модель запроса на создание заявки
type Request struct {
	Date           time.Time       // дата слота (без времени)
	Slot           domain.SlotCode // код слота в сетке текущих настроек
	RequesterName  string
	RequesterEmail string
	RequesterPhone string // опционально
	Description    string
}

// Response созданная заявка
type Response struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`
	Slot           int       `json:"slot"`
	RequesterName  string    `json:"requesterName"`
	RequesterEmail string    `json:"requesterEmail"`
	RequesterPhone string    `json:"requesterPhone,omitempty"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}
