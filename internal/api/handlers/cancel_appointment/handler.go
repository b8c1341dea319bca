package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PWS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PWS-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidBody         = "некорректное тело запроса"
	msgAppointmentNotFound = "запись не найдена"
	msgCancelNoteRequired  = "необходимо указать причину отмены"
	msgCancelNoteTooLong   = "причина отмены слишком длинная"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/appointments/{appointmentId}/cancel - invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.CancelAppointment(r.Context(), appointmentID, req.CancelNote); err != nil {
		switch {
		case errors.Is(err, schedule.ErrAppointmentNotFound):
			h.logger.Warn("POST /admin/appointments/{appointmentId}/cancel - appointment id=%s not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, schedule.ErrCancelNoteRequired):
			handlers.RespondBadRequest(w, msgCancelNoteRequired)
		case errors.Is(err, schedule.ErrCancelNoteTooLong):
			handlers.RespondBadRequest(w, msgCancelNoteTooLong)
		default:
			h.logger.Error("POST /admin/appointments/{appointmentId}/cancel - failed for id=%s: %v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
