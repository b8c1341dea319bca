package approve_request

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PWS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PWS-ScheduleService/internal/service/schedule"
)

const msgRequestNotFound = "заявка не найдена"

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

// Handle POST /api/v1/admin/requests/{requestId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	if err := h.service.ApproveRequest(r.Context(), requestID); err != nil {
		if errors.Is(err, schedule.ErrRequestNotFound) {
			h.logger.Warn("POST /admin/requests/{requestId}/approve - request id=%s not found", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)
			return
		}
		h.logger.Error("POST /admin/requests/{requestId}/approve - failed for id=%s: %v", requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
