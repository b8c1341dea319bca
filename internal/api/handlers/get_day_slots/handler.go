package get_day_slots

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PWS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PWS-ScheduleService/internal/domain"
	getDaySlots "github.com/m04kA/PWS-ScheduleService/internal/usecase/get_day_slots"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/days/{date}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateKey := mux.Vars(r)["date"]

	date, err := time.ParseInLocation(domain.DateFormat, dateKey, time.Local)
	if err != nil {
		h.logger.Warn("GET /days/{date}/slots - invalid date %q", dateKey)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySlots.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /days/{date}/slots - failed for date=%s: %v", dateKey, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
