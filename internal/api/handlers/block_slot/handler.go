package block_slot

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PWS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PWS-ScheduleService/internal/domain"
	"github.com/m04kA/PWS-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidDate  = "некорректная дата"
	msgInvalidSlot  = "некорректный код слота"
	msgSlotOccupied = "слот занят заявкой или записью"
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

// HandleBlock PUT /api/v1/admin/slots/{date}/{slotCode}/block
func (h *Handler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.BlockSlot, "block")
}

// HandleUnblock PUT /api/v1/admin/slots/{date}/{slotCode}/unblock
func (h *Handler) HandleUnblock(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.UnblockSlot, "unblock")
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, dateKey string, code domain.SlotCode) error, name string) {
	vars := mux.Vars(r)

	dateKey := vars["date"]
	if _, err := domain.ParseDateKey(dateKey); err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	code, err := domain.ParseSlotCode(vars["slotCode"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	if err := op(r.Context(), dateKey, code); err != nil {
		if errors.Is(err, schedule.ErrSlotOccupied) {
			h.logger.Warn("PUT /admin/slots/{date}/{slotCode}/%s - slot date=%s code=%d occupied", name, dateKey, code)
			handlers.RespondError(w, http.StatusConflict, msgSlotOccupied)
			return
		}
		h.logger.Error("PUT /admin/slots/{date}/{slotCode}/%s - failed for date=%s code=%d: %v", name, dateKey, code, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
