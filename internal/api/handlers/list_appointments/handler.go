package list_appointments

import (
	"net/http"

	"github.com/m04kA/PWS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PWS-ScheduleService/internal/service/schedule"
)

const msgInvalidBucket = "некорректный bucket, ожидается today|upcoming|history|cancelled"

// Корзины записей. Сегодняшний день показывается целиком,
// остальные корзины листаются постранично.
const (
	bucketToday     = "today"
	bucketUpcoming  = "upcoming"
	bucketHistory   = "history"
	bucketCancelled = "cancelled"
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

// ListResponse страница записей одной корзины
type ListResponse struct {
	Bucket     string         `json:"bucket"`
	Items      interface{}    `json:"items"`
	Pagination *schedule.Page `json:"pagination,omitempty"`
}

// Handle GET /api/v1/admin/appointments?bucket=today|upcoming|history|cancelled&page=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bucket := r.URL.Query().Get("bucket")
	if bucket == "" {
		bucket = bucketToday
	}
	page := handlers.QueryPage(r)

	var resp ListResponse
	switch bucket {
	case bucketToday:
		items := h.service.TodayAppointments()
		resp = ListResponse{Bucket: bucket, Items: items}

	case bucketUpcoming:
		items, meta := h.service.FutureAppointments(page, schedule.DefaultPageSize)
		resp = ListResponse{Bucket: bucket, Items: items, Pagination: &meta}

	case bucketHistory:
		items, meta := h.service.PastAppointments(page, schedule.DefaultPageSize)
		resp = ListResponse{Bucket: bucket, Items: items, Pagination: &meta}

	case bucketCancelled:
		items, meta := h.service.CancelledAppointments(page, schedule.DefaultPageSize)
		resp = ListResponse{Bucket: bucket, Items: items, Pagination: &meta}

	default:
		h.logger.Warn("GET /admin/appointments - invalid bucket %q", bucket)
		handlers.RespondBadRequest(w, msgInvalidBucket)
		return
	}

	h.logger.Info("GET /admin/appointments - bucket=%s, page=%d", bucket, page)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
