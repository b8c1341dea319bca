package create_request

import (
	"time"

	"github.com/m04kA/PWS-ScheduleService/internal/domain"
	createRequest "github.com/m04kA/PWS-ScheduleService/internal/usecase/create_request"
)

// CreateRequestRequest HTTP request model
type CreateRequestRequest struct {
	Date           string `json:"date"` // "2025-06-01"
	Slot           int    `json:"slot"`
	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail"`
	RequesterPhone string `json:"requesterPhone,omitempty"`
	Description    string `json:"description,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRequestRequest) ToUseCaseRequest() (*createRequest.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	return &createRequest.Request{
		Date:           date,
		Slot:           domain.SlotCode(r.Slot),
		RequesterName:  r.RequesterName,
		RequesterEmail: r.RequesterEmail,
		RequesterPhone: r.RequesterPhone,
		Description:    r.Description,
	}, nil
}
