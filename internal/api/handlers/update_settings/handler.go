package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/PWS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PWS-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidBody         = "некорректное тело запроса"
	msgInvalidSlotDuration = "недопустимая длительность слота"
	msgInvalidWorkingHours = "некорректные рабочие часы"
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

// Handle PUT /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.UpdateAllSettings(r.Context(), req.SlotDurationMinutes, req.StartHour, req.EndHour); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidSlotDuration):
			handlers.RespondBadRequest(w, msgInvalidSlotDuration)
		case errors.Is(err, schedule.ErrInvalidWorkingHours):
			handlers.RespondBadRequest(w, msgInvalidWorkingHours)
		default:
			h.logger.Error("PUT /admin/settings - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings - updated: duration=%d start=%d end=%d", req.SlotDurationMinutes, req.StartHour, req.EndHour)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
