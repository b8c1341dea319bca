package create_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/PWS-ScheduleService/internal/api/handlers"
	createRequest "github.com/m04kA/PWS-ScheduleService/internal/usecase/create_request"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "не заполнены обязательные поля заявки"
	msgDateInPast         = "дата заявки уже прошла"
	msgInvalidSlot        = "слот вне рабочей сетки"
	msgSlotNotAvailable   = "выбранный слот недоступен"
	msgDuplicateRequest   = "у вас уже есть ожидающая заявка"
)

type Handler struct {
	useCase CreateRequestUseCase
	logger  Logger
}

func NewHandler(useCase CreateRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requests - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /requests - failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRequest.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createRequest.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createRequest.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createRequest.ErrSlotNotAvailable):
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createRequest.ErrDuplicatePendingRequest):
			handlers.RespondError(w, http.StatusConflict, msgDuplicateRequest)

		default:
			h.logger.Error("POST /requests - failed to create request: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests - request created: id=%s, slot=%s/%d", result.ID, result.Date, result.Slot)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
