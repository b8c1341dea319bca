package list_requests

import (
	"net/http"

	"github.com/m04kA/PWS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PWS-ScheduleService/internal/domain"
	"github.com/m04kA/PWS-ScheduleService/internal/service/schedule"
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

// ListResponse страница очереди заявок
type ListResponse struct {
	Items      []domain.Request `json:"items"`
	Pagination schedule.Page    `json:"pagination"`
}

// Handle GET /api/v1/admin/requests?page=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page := handlers.QueryPage(r)

	items, meta := h.service.PendingRequests(page, schedule.DefaultPageSize)

	h.logger.Info("GET /admin/requests - page=%d, items=%d", page, len(items))
	handlers.RespondJSON(w, http.StatusOK, ListResponse{Items: items, Pagination: meta})
}
