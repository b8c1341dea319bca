package domain

import "time"

// Статусы заявок и записей в своих коллекциях
const (
	RequestStatusPending       = "pending"
	AppointmentStatusApproved  = "approved"
	AppointmentStatusCancelled = "cancelled"
)

// Request заявка посетителя на конкретный слот.
// Пока заявка лежит в коллекции requests, её статус всегда pending.
// Идентичность заявителя определяется по email, при его совпадении
// дополнительно -- по телефону.
type Request struct {
	ID             string    `json:"id,omitempty"`
	Date           string    `json:"date"` // dateKey YYYY-MM-DD
	Slot           SlotCode  `json:"slot"`
	RequesterName  string    `json:"requesterName"`
	RequesterEmail string    `json:"requesterEmail"`
	RequesterPhone string    `json:"requesterPhone"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// MatchesIdentity проверяет, принадлежит ли заявка указанной идентичности.
// Значение сверяется и с email, и с телефоном -- так же заявитель
// не сможет обойти ограничение, указав свой телефон в другом поле.
func (r *Request) MatchesIdentity(value string) bool {
	if value == "" {
		return false
	}
	return r.RequesterEmail == value || r.RequesterPhone == value
}

// Appointment подтверждённая запись. Создаётся из заявки при одобрении
// и живёт в отдельной коллекции appointments.
type Appointment struct {
	Request
	ApprovedAt time.Time `json:"approvedAt"`
}

// CancelledAppointment терминальная запись об отменённой встрече.
// Встречи никогда не удаляются бесследно -- для них остаётся след
// в коллекции cancelled.
type CancelledAppointment struct {
	Appointment
	CancelNote  string    `json:"cancelNote"`
	CancelledAt time.Time `json:"cancelledAt"`
}
